package tape

// missingType is the sentinel type for "value not yet computed". It is
// distinct from any legitimate value, including nil/nothing, so a Call's
// cached result can never be confused with an unresolved one.
type missingType struct{}

// Missing marks an operation's value as not yet computed. It is the
// default val for a Call built without an explicit override, unless the
// call is calculable at construction time (see [NewCall]).
var Missing any = missingType{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingType)
	return ok
}
