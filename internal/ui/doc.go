// Package ui contains the Bubble Tea program that powers the bookmark popup.
//
// Message flow:
//   - Key presses go to the open modal first. Alerts and the delete-all
//     confirmation block every other control until they are dismissed.
//   - Otherwise keys are routed by the focused control: text fields receive
//     typed runes, buttons and the list react to enter, tab moves focus.
//   - Storage work runs as tea.Cmd values through the command bus; each
//     returns one message carrying the re-read bookmark list or an error, so a
//     user action is always read, write, then render.
//
// Rendering:
//   - Static labels (page title, form titles, buttons) are looked up at view
//     time in the current language.
//   - Bookmark entries are built once per list render and cached. Changing the
//     language does not rebuild them; the next save, delete or remote change
//     does.
//
// Backend interactions:
//   - An optional backend.Watcher streams store changes made elsewhere (for
//     example another machine sharing a Redis store); the dispatcher applies
//     them to the bookmark state store and the list is re-rendered.
package ui
