// Package cli provides the interactive GophAuth client.
//
// It wires configuration, the local store, the API client and the session
// facade, restores the previous session at startup, and then hands control
// to one of two front-ends: a line REPL (App.Root) or the full-screen TUI.
//
// REPL commands: register, login, logout, whoami, show, help, exit.
//
// A background watcher pings the server's health endpoint and shows the
// connectivity mode in the prompt. See App, StartOnlineStatusWatcher, and
// runREPL for details.
package cli
