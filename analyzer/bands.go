package analyzer

// Band 最优区间 [Min, Max]
type Band struct {
	Min float64
	Max float64
}

// Contains 判断数值是否落在闭区间内
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// 健康评分使用的最优区间
var healthBands = struct {
	Nitrogen, Phosphorus, Potassium, OrganicMatter Band
	Iron, Zinc, Copper, Manganese                  Band
}{
	Nitrogen:      Band{30.0, 50.0},
	Phosphorus:    Band{20.0, 40.0},
	Potassium:     Band{40.0, 60.0},
	OrganicMatter: Band{2.0, 4.0},
	Iron:          Band{4.0, 6.0},
	Zinc:          Band{2.0, 4.0},
	Copper:        Band{0.8, 1.2},
	Manganese:     Band{3.0, 5.0},
}

// 施肥建议、环境影响、改良方向和季节建议使用的农艺区间
var advisoryBands = struct {
	PH, Nitrogen, Phosphorus, Potassium  Band
	OrganicMatter, Moisture, Temperature Band
	Iron, Zinc, Copper, Manganese        Band
}{
	PH:            Band{6.0, 7.0},
	Nitrogen:      Band{40.0, 80.0},
	Phosphorus:    Band{30.0, 60.0},
	Potassium:     Band{40.0, 80.0},
	OrganicMatter: Band{3.0, 6.0},
	Moisture:      Band{25.0, 35.0},
	Temperature:   Band{15.0, 25.0},
	Iron:          Band{4.0, 6.0},
	Zinc:          Band{2.0, 4.0},
	Copper:        Band{0.8, 1.2},
	Manganese:     Band{3.0, 5.0},
}

// pH 调节阈值
const (
	limeThresholdPH   = 5.5
	sulfurThresholdPH = 7.5
	maintenanceScore  = 7.0
)
