package model

// Snapshot 落盘的全量状态，整文件覆盖写入
// 布局与历代看板导出的 JSON 保持一致
type Snapshot struct {
	Courses     []SnapshotCourse `json:"courses"`
	ChatHistory []SnapshotTurn   `json:"chat_history"`
	TopicMemory *string          `json:"topic_memory"`
}

type SnapshotCourse struct {
	Name       string `json:"name"`
	Completion int    `json:"completion"`
	Status     string `json:"status"`
}

type SnapshotTurn struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	// ISO8601 时间戳
	TS string `json:"ts"`
}
