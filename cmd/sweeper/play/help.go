package play

// helpText is shown for the help command, rendered as markdown.
const helpText = `# Sweeper

Reveal every safe cell without hitting a mine. The first reveal of a game
is always safe. Flags are advisory marks that protect a cell from an
accidental reveal.

## Commands

- ` + "`start [easy|normal|hard]`" + ` (s) starts a new game at a difficulty.
  Easy is 8x8 with 10 mines, normal 16x16 with 40, hard 24x24 with 99.
- ` + "`start ROWS COLS MINES`" + ` starts a custom game, e.g. ` + "`start 10 12 20`" + `.
- ` + "`reveal POS`" + ` (r, hit, h, disclose) uncovers a cell, e.g. ` + "`reveal B3`" + `.
- ` + "`flag POS`" + ` (f) toggles a flag on a hidden cell.
- ` + "`display`" + ` (d) redraws the board.
- ` + "`end`" + ` (e) abandons the game and uncovers the board.
- ` + "`help`" + ` (?) shows this text.
- ` + "`quit`" + ` (q, exit) leaves the game.

## Positions

A position is a column letter and a 1-based row number in either order:
` + "`B3`" + `, ` + "`3B`" + `, ` + "`b 3`" + ` and ` + "`3 b`" + ` all name the same cell.
`
