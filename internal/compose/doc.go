// Package compose renders removal request emails and postal letters for a
// broker from user-supplied contact details.
package compose
