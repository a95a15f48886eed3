package validation

import (
	"fmt"
	"strings"
)

// SubjectMaxLength matches the subject column width.
const SubjectMaxLength = 200

// Message validates the subject and body of a message or reply.
func Message(subject, body string) []string {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" || body == "" {
		return []string{"Please fill in all fields"}
	}
	if length(subject) > SubjectMaxLength {
		return []string{fmt.Sprintf("Subject must be no more than %d characters long", SubjectMaxLength)}
	}
	return nil
}
