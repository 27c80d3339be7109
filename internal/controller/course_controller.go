package controller

import (
	"errors"
	"learning_path_backend/internal/service"
	"learning_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	ProgressService *service.ProgressService
	ExportService   *service.ExportService
}

func NewCourseController(progressService *service.ProgressService, exportService *service.ExportService) *CourseController {
	return &CourseController{
		ProgressService: progressService,
		ExportService:   exportService,
	}
}

// @Summary 课程列表
// @Description 按添加顺序返回全部课程与完成状态
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.ExportRows())
}

// @Summary 添加课程
// @Description 新增一门课程，名称重复时返回409
// @Tags 课程
// @Accept json
// @Produce json
// @Param course body object true "课程名称与初始完成度"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) AddCourse(ctx *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required,max=100"`
		Completion int    `json:"completion"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ProgressService.AddCourse(req.Name, req.Completion)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseExists):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrCompletionOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, course)
}

// @Summary 更新课程完成度
// @Description 设置完成度并重新派生状态，取值范围 [0,100]
// @Tags 课程
// @Accept json
// @Produce json
// @Param name path string true "课程名称"
// @Success 200 {object} util.Response
// @Router /api/courses/{name}/completion [put]
func (c *CourseController) SetCompletion(ctx *gin.Context) {
	name := ctx.Param("name")

	var req struct {
		Completion *int `json:"completion" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ProgressService.SetCompletion(name, *req.Completion)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrCompletionOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// @Summary 更新课程元数据
// @Description 更新小节总数与附件引用，不影响完成度
// @Tags 课程
// @Accept json
// @Produce json
// @Param name path string true "课程名称"
// @Success 200 {object} util.Response
// @Router /api/courses/{name}/metadata [patch]
func (c *CourseController) SetMetadata(ctx *gin.Context) {
	name := ctx.Param("name")

	var req struct {
		TotalTopics int      `json:"totalTopics" binding:"min=0"`
		Attachments []string `json:"attachments"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ProgressService.SetMetadata(name, req.TotalTopics, req.Attachments)
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	util.Success(ctx, course)
}

// @Summary 删除课程
// @Tags 课程
// @Produce json
// @Param name path string true "课程名称"
// @Success 200 {object} util.Response
// @Router /api/courses/{name} [delete]
func (c *CourseController) RemoveCourse(ctx *gin.Context) {
	name := ctx.Param("name")

	if err := c.ProgressService.RemoveCourse(name); err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"message": "课程已删除"})
}

// @Summary 批量调整完成度
// @Description 给所有课程加上 delta，逐项夹取到 [0,100]；delta=-100 即全部清零
// @Tags 课程
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/bulk-adjust [post]
func (c *CourseController) BulkAdjust(ctx *gin.Context) {
	var req struct {
		Delta *int `json:"delta" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.ProgressService.BulkAdjust(*req.Delta))
}

// @Summary 进度聚合统计
// @Description 返回均值、最高/最低课程与数量；没有课程时返回400提示先添加课程
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/aggregate [get]
func (c *CourseController) Aggregate(ctx *gin.Context) {
	agg, err := c.ProgressService.Aggregate()
	if err != nil {
		// 零课程状态是正常分支，提示调用方先添加课程
		util.BadRequest(ctx, "还没有课程，请先添加一门课程")
		return
	}

	util.Success(ctx, agg)
}

// @Summary 导出进度表
// @Description 支持 csv 与 xlsx 两种格式
// @Tags 课程
// @Produce octet-stream
// @Param format query string false "导出格式" default(csv)
// @Success 200 {file} file
// @Router /api/courses/export [get]
func (c *CourseController) Export(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", util.ExportFormatCSV)

	file, err := c.ExportService.Export(format)
	if err != nil {
		if errors.Is(err, util.ErrUnknownExportFormat) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	ctx.Data(200, file.ContentType, file.Content)
}
