package smmodel

// Staging labels managed by Secrets Manager during rotation.
const (
	// StageCurrent marks the version callers get by default.
	StageCurrent = "AWSCURRENT"
	// StagePending marks the version a rotation is preparing.
	StagePending = "AWSPENDING"
	// StagePrevious marks the last known good version after a rotation.
	StagePrevious = "AWSPREVIOUS"
)

// SortOrderType is the order of ListSecrets results by creation date.
type SortOrderType string

const (
	SortOrderTypeAsc  SortOrderType = "asc"
	SortOrderTypeDesc SortOrderType = "desc"
)

// Values returns every known SortOrderType.
func (SortOrderType) Values() []SortOrderType {
	return []SortOrderType{
		SortOrderTypeAsc,
		SortOrderTypeDesc,
	}
}

// IsKnown reports whether s is one of Values.
func (s SortOrderType) IsKnown() bool {
	switch s {
	case SortOrderTypeAsc, SortOrderTypeDesc:
		return true
	default:
		return false
	}
}

// FilterNameStringType is the attribute a ListSecrets filter matches against.
type FilterNameStringType string

const (
	FilterNameStringTypeDescription FilterNameStringType = "description"
	FilterNameStringTypeName        FilterNameStringType = "name"
	FilterNameStringTypeTagKey      FilterNameStringType = "tag-key"
	FilterNameStringTypeTagValue    FilterNameStringType = "tag-value"
	FilterNameStringTypeAll         FilterNameStringType = "all"
)

// Values returns every known FilterNameStringType.
func (FilterNameStringType) Values() []FilterNameStringType {
	return []FilterNameStringType{
		FilterNameStringTypeDescription,
		FilterNameStringTypeName,
		FilterNameStringTypeTagKey,
		FilterNameStringTypeTagValue,
		FilterNameStringTypeAll,
	}
}

// IsKnown reports whether f is one of Values.
func (f FilterNameStringType) IsKnown() bool {
	switch f {
	case FilterNameStringTypeDescription,
		FilterNameStringTypeName,
		FilterNameStringTypeTagKey,
		FilterNameStringTypeTagValue,
		FilterNameStringTypeAll:
		return true
	default:
		return false
	}
}
