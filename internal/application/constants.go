package application

const (
	// Google Sheets layout
	sheetsClearRange = "A1:Z1000"
	sheetsStartCell  = "A1"
	sheetsURLFormat  = "https://docs.google.com/spreadsheets/d/%s"

	excelFileMode = 0o644
)
