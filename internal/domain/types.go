package domain

type (
	ThreadId  = int64
	CommentId = int64

	ThreadTitle = string
	Tag         = string
)

// ThreadCategory is a closed set; see Categories.
type ThreadCategory string

const (
	CategoryThread ThreadCategory = "THREAD"
	CategoryQNA    ThreadCategory = "QNA"
)

// Categories lists every valid thread category.
var Categories = []ThreadCategory{CategoryThread, CategoryQNA}

func (c ThreadCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// AvailableTags is the premade tag vocabulary offered by the create form.
// Stored tags are plain strings; anything already persisted stays valid.
var AvailableTags = []Tag{"Discussion", "Help", "Feedback", "Announcement"}
