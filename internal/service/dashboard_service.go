package service

import (
	"learning_path_backend/internal/model"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/util"
	"math/rand"
)

// 能力雷达的固定维度
var insightCategories = []string{"Coding", "Theory", "Projects", "Assignments", "Revisions"}

type DashboardService struct {
	ProgressService *ProgressService
	StudyLogRepo    *repository.StudyLogRepository
	scoreRand       func(n int) int
}

func NewDashboardService(progressService *ProgressService, studyLogRepo *repository.StudyLogRepository) *DashboardService {
	return &DashboardService{
		ProgressService: progressService,
		StudyLogRepo:    studyLogRepo,
		scoreRand:       rand.Intn,
	}
}

// NewDashboardServiceWithRand 注入随机源，测试用
func NewDashboardServiceWithRand(progressService *ProgressService, studyLogRepo *repository.StudyLogRepository, scoreRand func(n int) int) *DashboardService {
	return &DashboardService{
		ProgressService: progressService,
		StudyLogRepo:    studyLogRepo,
		scoreRand:       scoreRand,
	}
}

// Overview 看板首页数据
type Overview struct {
	ActiveCourses   int              `json:"activeCourses"`
	AverageProgress float64          `json:"averageProgress"`
	TotalStudyHours int              `json:"totalStudyHours"`
	Aggregate       *model.Aggregate `json:"aggregate,omitempty"`
	WeeklyHours     []model.WeekLog  `json:"weeklyHours"`
}

// Forecast 完成预估
type Forecast struct {
	DailyHours int     `json:"dailyHours"`
	Mean       float64 `json:"mean"`
	DaysLeft   int     `json:"daysLeft"`
}

// Insights 能力维度得分与最强项
type Insights struct {
	Categories []string `json:"categories"`
	Scores     []int    `json:"scores"`
	BestArea   string   `json:"bestArea"`
}

// GetOverview 汇总快速统计
// 空集合不报错：看板要能在“还没有课程”状态下渲染，聚合字段留空
func (s *DashboardService) GetOverview() *Overview {
	overview := &Overview{
		ActiveCourses:   s.ProgressService.ProgressRepo.Count(),
		TotalStudyHours: s.StudyLogRepo.TotalHours(),
		WeeklyHours:     s.StudyLogRepo.All(),
	}

	agg, err := s.ProgressService.Aggregate()
	if err == nil {
		overview.Aggregate = agg
		overview.AverageProgress = agg.Mean
	}
	return overview
}

// LogStudyHours 记录某周学习时长
func (s *DashboardService) LogStudyHours(week string, hours int) error {
	if hours < 0 || hours > 100 {
		return util.ErrStudyHoursOutOfRange
	}
	return s.StudyLogRepo.SetHours(week, hours)
}

// GetForecast 按平均每日学习时长估算剩余天数
func (s *DashboardService) GetForecast(dailyHours int) (*Forecast, error) {
	if dailyHours < 1 || dailyHours > 10 {
		return nil, util.ErrDailyHoursOutOfRange
	}

	agg, err := s.ProgressService.Aggregate()
	if err != nil {
		return nil, err
	}

	remaining := 100 - agg.Mean
	daysLeft := int(remaining / float64(dailyHours*2))

	return &Forecast{
		DailyHours: dailyHours,
		Mean:       agg.Mean,
		DaysLeft:   daysLeft,
	}, nil
}

// GetInsights 随机生成能力维度得分并给出最强项
// 得分范围 [40,100)，并列时取靠前的维度
func (s *DashboardService) GetInsights() *Insights {
	scores := make([]int, len(insightCategories))
	best := 0
	for i := range insightCategories {
		scores[i] = 40 + s.scoreRand(60)
		if scores[i] > scores[best] {
			best = i
		}
	}

	return &Insights{
		Categories: append([]string(nil), insightCategories...),
		Scores:     scores,
		BestArea:   insightCategories[best],
	}
}
