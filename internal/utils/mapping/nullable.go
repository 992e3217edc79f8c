package mapping

// nullableID maps the zero ID to NULL for reference columns that the schema
// clears with ON DELETE SET NULL.
func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// idValue maps a NULL reference column back to the zero ID.
func idValue(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// nullableEnum maps an empty enum value to NULL for nullable enum columns.
func nullableEnum(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// enumValue maps a NULL enum column back to the empty value.
func enumValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
