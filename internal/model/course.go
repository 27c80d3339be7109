package model

// CourseStatus 课程完成度的派生状态
type CourseStatus string

const (
	StatusNotStarted CourseStatus = "not_started"
	StatusInProgress CourseStatus = "in_progress"
	StatusCompleted  CourseStatus = "completed"
)

// DeriveStatus 由完成度推导状态，0 未开始，100 已完成，其余进行中
func DeriveStatus(completion int) CourseStatus {
	switch {
	case completion <= 0:
		return StatusNotStarted
	case completion >= 100:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// Course 学习路径中的一门课程（或技能）
// Status 只由 Completion 派生，存储层不会单独修改它
type Course struct {
	Name       string       `json:"name"`
	Completion int          `json:"completion"`
	Status     CourseStatus `json:"status"`

	// 附带元数据，只透传不参与计算
	TotalTopics int      `json:"totalTopics,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// CourseRow 导出用的只读行
type CourseRow struct {
	Name       string       `json:"name"`
	Completion int          `json:"completion"`
	Status     CourseStatus `json:"status"`
}

// Aggregate 课程完成度的聚合统计
type Aggregate struct {
	Mean  float64 `json:"mean"`
	Max   Extreme `json:"max"`
	Min   Extreme `json:"min"`
	Count int     `json:"count"`
}

// Extreme 极值以及所属课程名
type Extreme struct {
	Name       string `json:"name"`
	Completion int    `json:"completion"`
}

// WeekLog 周学习时长记录
type WeekLog struct {
	Week  string `json:"week"`
	Hours int    `json:"hours"`
}
