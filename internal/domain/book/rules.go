package book

// CanCheckOut reports whether b may be lent out.
func CanCheckOut(b Book) bool {
	return b.CheckedOutByID == nil
}

// CanReturn reports whether b may be returned.
func CanReturn(b Book) bool {
	return b.CheckedOutByID != nil
}
