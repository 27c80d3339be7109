package util

import "errors"

var (
	ErrCourseExists         = errors.New("该课程名称已存在")
	ErrCourseNotFound       = errors.New("课程不存在")
	ErrCompletionOutOfRange = errors.New("completion must be within [0, 100]")
	ErrEmptyStore           = errors.New("no courses yet")
	ErrCorruptSnapshot      = errors.New("snapshot file corrupt or unreadable")
	ErrWeekNotFound         = errors.New("week not found")
	ErrStudyHoursOutOfRange = errors.New("study hours must be within [0, 100]")
	ErrUnknownExportFormat  = errors.New("unknown export format")
	ErrDailyHoursOutOfRange = errors.New("daily hours must be within [1, 10]")
)
