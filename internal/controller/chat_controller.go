package controller

import (
	"learning_path_backend/internal/middleware"
	"learning_path_backend/internal/service"
	"learning_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// @Summary 发送消息
// @Description 提交一条用户输入，返回助手回复；空白输入不产生任何记录
// @Tags 学习助手
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sessionID := middleware.SessionID(ctx)
	reply, ok := c.ChatService.SendMessage(sessionID, req.Message)
	if !ok {
		// 空白输入按无操作处理
		util.Success(ctx, gin.H{"reply": nil})
		return
	}

	util.Success(ctx, gin.H{
		"reply": reply,
		"topic": c.ChatService.TopicMemory(sessionID),
	})
}

// @Summary 会话历史
// @Tags 学习助手
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	sessionID := middleware.SessionID(ctx)
	util.Success(ctx, gin.H{
		"history": c.ChatService.History(sessionID),
		"topic":   c.ChatService.TopicMemory(sessionID),
	})
}

// @Summary 清空会话
// @Tags 学习助手
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chat/history [delete]
func (c *ChatController) ClearHistory(ctx *gin.Context) {
	c.ChatService.ClearHistory(middleware.SessionID(ctx))
	util.Success(ctx, gin.H{"message": "会话已清空"})
}

// @Summary 快捷提问列表
// @Tags 学习助手
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chat/quick-prompts [get]
func (c *ChatController) QuickPrompts(ctx *gin.Context) {
	util.Success(ctx, service.QuickPrompts)
}
