package controller

import (
	"learning_path_backend/internal/middleware"
	"learning_path_backend/internal/service"
	"learning_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SnapshotController struct {
	SnapshotService *service.SnapshotService
}

func NewSnapshotController(snapshotService *service.SnapshotService) *SnapshotController {
	return &SnapshotController{SnapshotService: snapshotService}
}

// @Summary 保存快照
// @Description 把课程集合与当前会话的对话整文件写入磁盘
// @Tags 状态
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/state/save [post]
func (c *SnapshotController) Save(ctx *gin.Context) {
	if err := c.SnapshotService.Save(middleware.SessionID(ctx)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "快照已保存"})
}

// @Summary 加载快照
// @Description 从磁盘恢复状态，文件缺失或损坏时回到默认种子课程
// @Tags 状态
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/state/load [post]
func (c *SnapshotController) Load(ctx *gin.Context) {
	seeded := c.SnapshotService.Load()
	util.Success(ctx, gin.H{"seeded": seeded})
}
