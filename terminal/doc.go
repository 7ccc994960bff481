// Package terminal renders the game into a character terminal through tcell.
//
// Features:
//   - Logical pixel space scaled onto the current terminal grid, rescaled on resize
//   - PNG sprites converted to quadrant-block cells, transparent pixels left undrawn
//   - True color and 256-color output
//   - Held-key emulation from press and auto-repeat events
//   - Clean terminal restoration on exit/panic
package terminal
