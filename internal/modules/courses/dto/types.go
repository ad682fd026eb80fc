package dto

type CourseOutput struct {
	Name string
}

type AddInput struct {
	// Raw is the user's course entry, possibly several names separated by
	// commas or line breaks.
	Raw string
}

type AddOutput struct {
	Created []string
}
