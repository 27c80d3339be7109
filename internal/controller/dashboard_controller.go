package controller

import (
	"errors"
	"learning_path_backend/internal/service"
	"learning_path_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 看板概览
// @Description 课程数、平均进度、学习总时长与周视图
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetOverview())
}

// @Summary 记录周学习时长
// @Description 覆盖指定周的学习小时数，取值范围 [0,100]
// @Tags 看板
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard/study-hours [post]
func (c *DashboardController) LogStudyHours(ctx *gin.Context) {
	var req struct {
		Week  string `json:"week" binding:"required"`
		Hours *int   `json:"hours" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.DashboardService.LogStudyHours(req.Week, *req.Hours); err != nil {
		switch {
		case errors.Is(err, util.ErrWeekNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"message": "学习时长已记录"})
}

// @Summary 完成预估
// @Description 按平均每日学习时长估算完成学习路径还需的天数
// @Tags 看板
// @Produce json
// @Param dailyHours query int false "平均每日学习小时数" default(2)
// @Success 200 {object} util.Response
// @Router /api/dashboard/forecast [get]
func (c *DashboardController) GetForecast(ctx *gin.Context) {
	dailyHours, err := strconv.Atoi(ctx.DefaultQuery("dailyHours", "2"))
	if err != nil {
		util.BadRequest(ctx, "无效的 dailyHours")
		return
	}

	forecast, err := c.DashboardService.GetForecast(dailyHours)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyStore):
			util.BadRequest(ctx, "还没有课程，请先添加一门课程")
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, forecast)
}

// @Summary 能力洞察
// @Description 五个能力维度的得分与最强项
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard/insights [get]
func (c *DashboardController) GetInsights(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetInsights())
}
