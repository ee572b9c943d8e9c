/*
Package tabular turns downloaded dataset payloads into a uniform row table.

Two sources are supported and both normalize to Table:

  - DelimitedText: CSV text, already decoded (see Decode)
  - Workbook: raw xlsx bytes; only the first sheet is read

Cells are trimmed and keep their column position. Rows whose cells are all
blank are dropped; rows are never reordered.

# Character encoding

Government CSV exports are frequently Shift-JIS. Decode tries Shift-JIS first
and falls back to UTF-8 only when the Shift-JIS decoder hits bytes it cannot
map. Text that is valid under both encodings is decoded as Shift-JIS even if
the publisher meant UTF-8; the catalog does not reliably declare a charset, so
this cannot be detected here.
*/
package tabular
