package tintty

const (
	exitOk    = 0
	exitError = 2

	// Catalogue listing
	defaultListWidth = 80
	sampleText       = "sample"
)
