package entities

// Locator is an XPath expression identifying elements on the current page.
type Locator string

// String returns the raw XPath expression
func (l Locator) String() string {
	return string(l)
}

// WaitCondition represents the element state a wait polls for
type WaitCondition string

const (
	// ConditionPresent - element is attached to the DOM
	ConditionPresent WaitCondition = "present"
	// ConditionVisible - element is attached and displayed
	ConditionVisible WaitCondition = "visible"
	// ConditionClickable - element is displayed and enabled
	ConditionClickable WaitCondition = "clickable"
)
