package diag

// Variables controlling the style of the colorized caret strip in
// Error.Show.
var (
	culpritLineBegin = "\033[1;4m"
	culpritLineEnd   = "\033[m"
)
