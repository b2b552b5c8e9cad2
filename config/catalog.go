package config

// Static catalog: enumerations, lookup tables and thresholds the views share.
// Domain values are kept in Chinese, matching what is stored in the database.

var FitnessGoals = []string{"减重", "增肌", "提高耐力", "增强力量", "改善灵活性", "保持健康"}

var ExerciseTypes = []string{"跑步", "游泳", "骑行", "瑜伽", "力量训练", "跳绳", "篮球", "健走"}

var IntensityLevels = []string{"低", "中", "高"}

// IntensityCalories is the per-record calorie weight used by the
// recommendation score. It is a scoring weight, not the record's own
// calories_burned value.
var IntensityCalories = map[string]float64{
	"低": 100,
	"中": 200,
	"高": 300,
}

// Recommendation score thresholds (average weighted calories per day).
const (
	RecScoreLow  = 300
	RecScoreHigh = 500
)

// Meal slots by hour of day: [5,10) breakfast, [10,15) lunch, otherwise dinner.
const (
	MealBreakfast = "早餐"
	MealLunch     = "午餐"
	MealDinner    = "晚餐"
)

// DefaultFoodGoal is the bucket used when a user's goal has no food table.
const DefaultFoodGoal = "保持健康"

// FoodCategories maps (fitness goal, meal slot) to candidate dishes.
var FoodCategories = map[string]map[string][]string{
	"减重": {
		MealBreakfast: {"燕麦粥配蓝莓", "全麦面包加鸡蛋", "无糖豆浆配玉米"},
		MealLunch:     {"鸡胸肉沙拉", "清蒸鱼配糙米饭", "蔬菜豆腐汤"},
		MealDinner:    {"凉拌西兰花配虾仁", "番茄蔬菜汤", "烤三文鱼配芦笋"},
	},
	"增肌": {
		MealBreakfast: {"鸡蛋牛奶燕麦", "花生酱全麦吐司", "蛋白粉香蕉奶昔"},
		MealLunch:     {"牛肉糙米饭", "鸡腿肉配红薯", "三文鱼意面"},
		MealDinner:    {"煎牛排配土豆", "虾仁炒蛋配米饭", "鸡胸肉配藜麦"},
	},
	"保持健康": {
		MealBreakfast: {"小米粥配鸡蛋", "牛奶麦片", "包子配豆浆"},
		MealLunch:     {"家常炒时蔬配米饭", "清炖鸡汤面", "鱼香豆腐配糙米"},
		MealDinner:    {"清蒸鲈鱼配青菜", "杂粮饭配炒青椒", "冬瓜排骨汤"},
	},
}

// Feature encodings for the retrain action, fixed to match the stored values.
var (
	GenderEncoding    = map[string]float64{"男": 0, "女": 1}
	IntensityEncoding = map[string]float64{"低": 0, "中": 1, "高": 2}
)

// RetrainMinRows is the minimum number of joined rows required before a
// retrain performs any work.
const RetrainMinRows = 10

// Navigation pages, user and admin sidebars.
var (
	UserPages       = []string{"个人资料", "锻炼记录", "锻炼推荐", "数据统计"}
	AdminPages      = []string{"用户管理", "数据分析", "系统设置"}
	UserLandingPage = "锻炼推荐"
	AdminLanding    = "用户管理"
)
