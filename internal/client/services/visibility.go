package services

// Visibility controls whether a password field is masked.
type Visibility string

const (
	VisibilityMasked Visibility = "password"
	VisibilityText   Visibility = "text"
)

func (v Visibility) Toggle() Visibility {
	if v == VisibilityText {
		return VisibilityMasked
	}
	return VisibilityText
}

func (v Visibility) Masked() bool { return v != VisibilityText }
