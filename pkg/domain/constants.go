package domain

// File names used inside the data directory.
const (
	// PointerFileName holds the shared pointer as bare decimal text.
	PointerFileName = "ptr.txt"

	// PropertiesFileName names the two book files (left_name, right_name).
	PropertiesFileName = "bi.properties"

	// ParagraphSeparator is written between paragraphs when a book is saved.
	ParagraphSeparator = "\n\n"
)
