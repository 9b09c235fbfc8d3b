package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"W001": {
		Category: CategoryResolution,
		Message:  "Unsupported shape in endpoint descriptor",
		Detail:   "The resolver only compiles primitive, sequence, tuple, record, sum, and deferred shapes.",
		DocURL:   "https://waymark.dev/docs/errors/W001",
	},
	"W002": {
		Category: CategoryConfig,
		Message:  "Nil shape in endpoint descriptor",
		Detail:   "A shape field or case field was declared as nil. Every member of a descriptor must be a constructed shape.",
		DocURL:   "https://waymark.dev/docs/errors/W002",
	},
	"W003": {
		Category: CategoryConfig,
		Message:  "Multiple unlabeled cases in sum shape",
		Detail:   "At most one case of a sum may have an empty prefix; the unlabeled case is matched by fallback and two of them cannot be told apart.",
		DocURL:   "https://waymark.dev/docs/errors/W003",
	},
	"W004": {
		Category: CategoryResolution,
		Message:  "Deferred shape resolved to nil",
		Detail:   "The function passed to shape.Defer returned nil. For recursive declarations, the referenced variable must be assigned before the shape is resolved.",
		DocURL:   "https://waymark.dev/docs/errors/W004",
	},
	"W005": {
		Category: CategoryConfig,
		Message:  "Sum case missing constructor or deconstructor",
		Detail:   "Every sum case needs both a Make and a Deconstruct function; rendering dispatches on Deconstruct and parsing builds values with Make.",
		DocURL:   "https://waymark.dev/docs/errors/W005",
	},
}
