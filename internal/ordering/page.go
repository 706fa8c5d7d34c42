package ordering

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Paging is a normalized page request.
type Paging struct {
	Number int
	Size   int
}

func NewPaging(number, size int) Paging {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Paging{Number: number, Size: size}
}

func (p Paging) Skip() int64 { return int64(p.Number-1) * int64(p.Size) }

func (p Paging) Limit() int64 { return int64(p.Size) }

// TotalPages is ceil(total / size).
func (p Paging) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	size := int64(p.Size)
	return int((total + size - 1) / size)
}

// ClampLimit bounds a top-N style limit.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
