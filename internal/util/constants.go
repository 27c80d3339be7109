package util

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

// SessionHeader 会话隔离使用的请求头，缺失时由中间件生成
const SessionHeader = "X-Session-ID"

// DefaultSessionID 单用户模式下的默认会话，快照恢复目标
const DefaultSessionID = "default"
