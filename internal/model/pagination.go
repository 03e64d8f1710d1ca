package model

// Pagination bounds. Out-of-range values are clamped, never rejected.
const (
	MaxPageSize              = 100
	DefaultPostPageSize      = 50
	DefaultDirectoryPageSize = 10
)

// ClampLimit normalizes a post-listing limit into [1, MaxPageSize].
// Non-positive values fall back to the default page size.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultPostPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ClampOffset normalizes a listing offset to be non-negative.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// ClampPage normalizes a directory page number to be at least 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampCount normalizes a directory page size into [1, MaxPageSize].
// Non-positive values fall back to the directory default.
func ClampCount(count int) int {
	if count < 1 {
		return DefaultDirectoryPageSize
	}
	if count > MaxPageSize {
		return MaxPageSize
	}
	return count
}
