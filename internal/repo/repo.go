package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

// windowCap sizes a result slice by the rows that can actually come back,
// never by the requested limit alone.
func windowCap(limit int, total int64) int {
	if total < int64(limit) {
		return int(total)
	}
	return limit
}
