package notesheet

// MarkupGuide is the user-facing reference for the notes markup.
const MarkupGuide = `Notes markup guide

One tag per line. Blank lines are ignored.

  [MAIN_TITLE]Title text[/MAIN_TITLE]
      Centered title spanning both columns. Only the first one on the
      first page is drawn.

  [SUB_TITLE]Section[/SUB_TITLE]
      Highlighted section heading.

  [POINT:-] Point text
      Bulleted point. The text between "[POINT:" and "]" is the bullet.

  [BOX]
  Any number of lines
  [/BOX]
      Shaded, outlined box. Each line starts a new line in the box
      (lines are not joined into one paragraph); long lines wrap.

  [COLUMN_BREAK]
      Continue in the right column.

  [PAGE_BREAK]
      Continue on a new page.

Lines that match none of these are skipped with a warning.
`
