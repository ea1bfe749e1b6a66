package service

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

// Logical cache collections. Every mutating operation on a collection ends
// with an explicit EvictCollection call; cascading deletes evict the affected
// child collections too.
const (
	collectionStudents        = "students"
	collectionQuizzes         = "quizzes"
	collectionQuizAssignments = "quizAssignments"
)

const cacheKeyAll = "all"

func cacheKeyID(id uint) string {
	return "id:" + strconv.FormatUint(uint64(id), 10)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
