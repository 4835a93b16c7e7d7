// Package ui composes dockable panels into a Bubble Tea workspace.
//
// Core abstractions:
//   - View: A panel's content with its own model, update, view (Elm-style)
//   - Tile: A bounded region hosting a View plus its panel display state
//   - Workspace: The root model arranging tiles (tiled, maximized, tray)
//   - FocusManager: Tracks and rotates focus across tiles
//
// Display-state transitions (maximize, minimize, restore) live in
// internal/panel; this package supplies the visual surface they drive.
package ui
