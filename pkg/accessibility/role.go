// Package accessibility derives and normalizes the accessible metadata every
// built node carries. Attachment is additive and never fails: usable fields
// from caller-supplied records are kept, unusable ones degrade to derived
// defaults, and unknown fields are dropped.
package accessibility

import "fmt"

// Role is the semantic role a rendering host maps onto its platform
// accessibility API.
type Role string

const (
	RoleButton      Role = "button"
	RoleTextField   Role = "textfield"
	RoleProgressBar Role = "progressbar"
	RoleHeading     Role = "heading"
	RoleImage       Role = "image"
	RoleLink        Role = "link"
	RoleCheckbox    Role = "checkbox"
	RoleSlider      Role = "slider"
	RoleList        Role = "list"
	RoleDialog      Role = "dialog"
	RoleAlert       Role = "alert"
	RoleGroup       Role = "group"
	RoleRegion      Role = "region"
	RoleText        Role = "text"
	RoleNone        Role = "none"
)

// ValidRoles lists the closed role set in canonical order.
func ValidRoles() []Role {
	return []Role{
		RoleButton, RoleTextField, RoleProgressBar, RoleHeading, RoleImage,
		RoleLink, RoleCheckbox, RoleSlider, RoleList, RoleDialog,
		RoleAlert, RoleGroup, RoleRegion, RoleText, RoleNone,
	}
}

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	for _, valid := range ValidRoles() {
		if role == valid {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// LiveRegion controls how assistive technology announces content changes.
type LiveRegion string

const (
	LivePolite    LiveRegion = "polite"
	LiveAssertive LiveRegion = "assertive"
)

// ParseLiveRegion validates a live region string.
func ParseLiveRegion(s string) (LiveRegion, error) {
	switch LiveRegion(s) {
	case LivePolite, LiveAssertive:
		return LiveRegion(s), nil
	}
	return "", fmt.Errorf("unknown live region %q", s)
}

// DefaultRole maps a component type onto its semantic role. Unknown types
// read as none.
func DefaultRole(componentType string) Role {
	switch componentType {
	case "Button":
		return RoleButton
	case "TextInput":
		return RoleTextField
	case "Text":
		return RoleText
	case "ProgressBar":
		return RoleProgressBar
	case "Column", "Row":
		return RoleGroup
	case "Scroll":
		return RoleRegion
	case "ScrollList":
		return RoleList
	case "Modal":
		return RoleDialog
	case "Toast":
		return RoleAlert
	}
	return RoleNone
}
