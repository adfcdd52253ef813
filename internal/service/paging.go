package service

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
