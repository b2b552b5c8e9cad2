package services

import (
	"errors"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/models"

	"gonum.org/v1/gonum/mat"
	"gorm.io/gorm"
)

var (
	ErrInsufficientData = errors.New("数据量不足，无法训练模型")
	ErrBadHyperparams   = errors.New("模型参数超出允许范围")
)

// ModelService owns the admin retrain action. The fitted model is never
// persisted or served; the only durable effect of a retrain is the
// hyperparameter audit row.
type ModelService struct{ db *gorm.DB }

func NewModelService(db *gorm.DB) *ModelService { return &ModelService{db: db} }

type Hyperparams struct {
	NEstimators     int `json:"n_estimators"`
	MaxDepth        int `json:"max_depth"`
	MinSamplesSplit int `json:"min_samples_split"`
}

func (h Hyperparams) validate() error {
	if h.NEstimators < 10 || h.NEstimators > 200 ||
		h.MaxDepth < 3 || h.MaxDepth > 20 ||
		h.MinSamplesSplit < 2 || h.MinSamplesSplit > 10 {
		return ErrBadHyperparams
	}
	return nil
}

type RetrainResult struct {
	RowsUsed     int       `json:"rows_used"`
	Coefficients []float64 `json:"coefficients"` // intercept, age, gender, duration, intensity
}

type trainingRow struct {
	Age            int
	Gender         string
	Duration       int
	Intensity      string
	CaloriesBurned float64
}

// Retrain pulls every record joined with the owner's demographics, fits
// calories burned against (age, gender, duration, intensity) and appends one
// audit row. With fewer than the minimum joined rows nothing happens at all.
func (s *ModelService) Retrain(params Hyperparams) (*RetrainResult, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	var rows []trainingRow
	err := s.db.
		Model(&models.ExerciseRecord{}).
		Select("users.age, users.gender, exercise_records.duration, exercise_records.intensity, exercise_records.calories_burned").
		Joins("JOIN users ON users.user_id = exercise_records.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) < config.RetrainMinRows {
		return nil, ErrInsufficientData
	}

	// Encode features with the fixed maps; rows with values outside the maps
	// cannot be encoded and are left out of the fit.
	var features [][4]float64
	var targets []float64
	for _, r := range rows {
		g, okG := config.GenderEncoding[r.Gender]
		i, okI := config.IntensityEncoding[r.Intensity]
		if !okG || !okI {
			continue
		}
		features = append(features, [4]float64{float64(r.Age), g, float64(r.Duration), i})
		targets = append(targets, r.CaloriesBurned)
	}
	if len(features) < config.RetrainMinRows {
		return nil, ErrInsufficientData
	}

	coef, err := fitLeastSquares(features, targets)
	if err != nil {
		return nil, err
	}

	audit := models.ModelParams{
		NEstimators:     params.NEstimators,
		MaxDepth:        params.MaxDepth,
		MinSamplesSplit: params.MinSamplesSplit,
	}
	if err := s.db.Create(&audit).Error; err != nil {
		return nil, err
	}

	return &RetrainResult{RowsUsed: len(features), Coefficients: coef}, nil
}

// fitLeastSquares solves the overdetermined system with an intercept column.
// The SVD minimum-norm solution tolerates collinear features: a dataset where
// every user shares one gender (a constant column) still yields a fit.
func fitLeastSquares(features [][4]float64, targets []float64) ([]float64, error) {
	n := len(features)
	x := mat.NewDense(n, 5, nil)
	y := mat.NewVecDense(n, targets)
	for i, f := range features {
		x.Set(i, 0, 1)
		for j, v := range f {
			x.Set(i, j+1, v)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, errors.New("模型训练失败：特征矩阵分解失败")
	}
	rank := svd.Rank(1e-12)
	if rank == 0 {
		return nil, errors.New("模型训练失败：特征矩阵为零")
	}

	var coef mat.VecDense
	svd.SolveVecTo(&coef, y, rank)

	out := make([]float64, 5)
	for i := range out {
		out[i] = round2(coef.AtVec(i))
	}
	return out, nil
}
