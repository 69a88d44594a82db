package linear

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/MartonHorvath98/quantstats/core/model"
	"github.com/MartonHorvath98/quantstats/core/parallel"
	"github.com/MartonHorvath98/quantstats/metrics"
	"github.com/MartonHorvath98/quantstats/pkg/errors"
)

// SimpleRegression は単回帰モデル（response ~ predictor）
// 最小二乗法で切片と傾きを推定し、傾きの解析的標準誤差も併せて計算する
type SimpleRegression struct {
	model.BaseEstimator
	origin bool // 原点を通る回帰直線を当てはめるかどうか

	Slope     float64 // 傾き（係数）
	Intercept float64 // 切片
	NSamples  int     // 学習に使用した観測数

	// 解析量（Fit時に計算される）
	residVar    float64 // 残差分散 s² = RSS / 自由度
	slopeSE     float64 // 傾きの標準誤差
	interceptSE float64 // 切片の標準誤差
	r2          float64 // 決定係数
	df          int     // 残差自由度
}

// NewSimpleRegression は新しい単回帰モデルを作成する
func NewSimpleRegression(opts ...Option) *SimpleRegression {
	lr := &SimpleRegression{}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit はモデルを観測データで学習させる
//
// 学習後、傾き・切片に加えて残差分散と両係数の標準誤差、決定係数が
// 利用可能になる。説明変数に分散がない場合はDegenerateFitErrorを返す。
func (lr *SimpleRegression) Fit(x, y []float64) (err error) {
	// panicをエラーに変換して回復する
	defer errors.Recover(&err, "SimpleRegression.Fit")

	// 入力の検証
	n := len(x)
	if n == 0 {
		return errors.NewModelError("SimpleRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if len(y) != n {
		return errors.NewDimensionError("SimpleRegression.Fit", n, len(y))
	}
	if err := errors.CheckNumericalStability("SimpleRegression.Fit.x", x, -1); err != nil {
		return err
	}
	if err := errors.CheckNumericalStability("SimpleRegression.Fit.y", y, -1); err != nil {
		return err
	}

	// 説明変数の変動 Sxx を計算（原点回帰の場合は Σx²）
	xMean := 0.0
	if !lr.origin {
		xMean = stat.Mean(x, nil)
	}
	var sxx float64
	for _, xv := range x {
		d := xv - xMean
		sxx += d * d
	}

	// 説明変数に分散がなければ傾きは定義できない
	if sxx == 0 {
		return errors.NewDegenerateFitError("SimpleRegression.Fit", -1, n)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, lr.origin)
	if err := errors.CheckScalar("SimpleRegression.Fit.slope", beta, -1); err != nil {
		return err
	}

	lr.Intercept = alpha
	lr.Slope = beta
	lr.NSamples = n

	// 残差分散 s² = RSS / (n - p)
	// p は推定したパラメータ数（切片ありなら2、原点回帰なら1）
	var rss float64
	for i := range x {
		r := y[i] - (alpha + beta*x[i])
		rss += r * r
	}
	p := 2
	if lr.origin {
		p = 1
	}
	lr.df = n - p
	if lr.df > 0 {
		lr.residVar = rss / float64(lr.df)
		lr.slopeSE = math.Sqrt(lr.residVar / sxx)
		if lr.origin {
			lr.interceptSE = 0
		} else {
			lr.interceptSE = math.Sqrt(lr.residVar * (1.0/float64(n) + xMean*xMean/sxx))
		}
	} else {
		// 自由度がない場合、残差分散は定義できない
		lr.residVar = math.NaN()
		lr.slopeSE = math.NaN()
		lr.interceptSE = math.NaN()
	}

	lr.r2 = stat.RSquared(x, y, nil, alpha, beta)

	// モデルを学習済み状態に設定
	lr.SetFitted()

	return nil
}

// Predict は入力データに対する予測を行う
func (lr *SimpleRegression) Predict(x []float64) ([]float64, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleRegression", "Predict")
	}

	// 並列処理の閾値（この値以下の観測数では逐次処理を使用）
	const parallelThreshold = 1000

	// 予測: y = intercept + slope * x
	predictions := make([]float64, len(x))
	parallel.ParallelizeWithThreshold(len(x), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			predictions[i] = lr.Intercept + lr.Slope*x[i]
		}
	})
	return predictions, nil
}

// SlopeStdErr は傾きの解析的標準誤差を返す
// 残差自由度がない（n <= パラメータ数）場合はエラーを返す
func (lr *SimpleRegression) SlopeStdErr() (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("SimpleRegression", "SlopeStdErr")
	}
	if lr.df <= 0 {
		return 0, errors.NewValueError("SimpleRegression.SlopeStdErr",
			"no residual degrees of freedom: standard error undefined")
	}
	return lr.slopeSE, nil
}

// InterceptStdErr は切片の解析的標準誤差を返す
func (lr *SimpleRegression) InterceptStdErr() (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("SimpleRegression", "InterceptStdErr")
	}
	if lr.df <= 0 {
		return 0, errors.NewValueError("SimpleRegression.InterceptStdErr",
			"no residual degrees of freedom: standard error undefined")
	}
	return lr.interceptSE, nil
}

// ResidualVariance は残差分散 s² = RSS/(n-p) を返す
func (lr *SimpleRegression) ResidualVariance() (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("SimpleRegression", "ResidualVariance")
	}
	if lr.df <= 0 {
		return 0, errors.NewValueError("SimpleRegression.ResidualVariance",
			"no residual degrees of freedom: residual variance undefined")
	}
	return lr.residVar, nil
}

// RSquared は学習データに対する決定係数（R²）を返す
func (lr *SimpleRegression) RSquared() (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("SimpleRegression", "RSquared")
	}
	return lr.r2, nil
}

// Score は新しいデータに対する決定係数（R²）を計算する
func (lr *SimpleRegression) Score(x, y []float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("SimpleRegression", "Score")
	}

	yPred, err := lr.Predict(x)
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(y, yPred)
}
