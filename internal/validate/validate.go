// Package validate holds the per-resource input checks applied before any
// mutation.  Checks run in a fixed order (presence, then type, then range)
// and the first failure wins; nothing past it is evaluated.  On create all
// fields are required, on update only the fields present in the payload are
// checked.  Error messages are part of the public API contract and must not
// be reworded.
package validate

// Error carries the human-readable message returned to the client in the
// 400 response envelope.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(msg string) error { return &Error{Message: msg} }

// isNumber reports whether the decoded JSON value is numeric.  encoding/json
// decodes every JSON number into float64, so a single assertion covers both
// integers and reals.
func isNumber(v any) bool {
	_, ok := v.(float64)
	return ok
}

func isPositive(v any) bool {
	n, ok := v.(float64)
	return ok && n > 0
}

// rule checks one group of fields sharing an error wording.
type rule struct {
	fields      []string
	missingMsg  string
	typeMsg     string
	positiveMsg string
}

// check runs presence/type/range for the rule.  partial skips the presence
// requirement and only inspects fields that appear in the payload.
func (r rule) check(body map[string]any, partial bool) error {
	if !partial {
		for _, f := range r.fields {
			if _, ok := body[f]; !ok {
				return fail(r.missingMsg)
			}
		}
	}
	for _, f := range r.fields {
		if v, ok := body[f]; ok && !isNumber(v) {
			return fail(r.typeMsg)
		}
	}
	for _, f := range r.fields {
		if v, ok := body[f]; ok && !isPositive(v) {
			return fail(r.positiveMsg)
		}
	}
	return nil
}

var rectangleRule = rule{
	fields:      []string{"length", "width"},
	missingMsg:  "must include length and width fields",
	typeMsg:     "length and width must be numbers",
	positiveMsg: "length and width must be positive",
}

var squareRule = rule{
	fields:      []string{"length"},
	missingMsg:  "must include length field",
	typeMsg:     "length must be a number",
	positiveMsg: "length must be positive",
}

var triangleRule = rule{
	fields:      []string{"length1", "length2", "length3"},
	missingMsg:  "must include length1, length2, and length3 fields",
	typeMsg:     "length must be numbers",
	positiveMsg: "length must be positive",
}

var diamondRule = rule{
	fields:      []string{"diagonal1", "diagonal2"},
	missingMsg:  "must include diagonal1 and diagonal2 fields",
	typeMsg:     "diagonal1 and diagonal2 must be numbers",
	positiveMsg: "diagonal1 and diagonal2 must be positive",
}

// Rectangle validates a rectangle payload.
func Rectangle(body map[string]any, partial bool) error {
	return rectangleRule.check(body, partial)
}

// Square validates a square payload.
func Square(body map[string]any, partial bool) error {
	return squareRule.check(body, partial)
}

// Triangle validates a triangle payload.
func Triangle(body map[string]any, partial bool) error {
	return triangleRule.check(body, partial)
}

// Diamond validates a diamond payload.
func Diamond(body map[string]any, partial bool) error {
	return diamondRule.check(body, partial)
}

// Register validates the fields required to create a user.  Uniqueness is
// checked separately against the database.
func Register(body map[string]any) error {
	name, _ := body["user_name"].(string)
	pass, _ := body["password"].(string)
	if name == "" || pass == "" {
		return fail("must include user_name and password fields")
	}
	return nil
}
