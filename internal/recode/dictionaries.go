package recode

// Per-field codebooks for the four source tables. These mirror the reporting
// form's code sheets; keeping them as data makes the mapping auditable and
// independently testable.
var (
	// Weather covers both WEATHER1 and WEATHER2; the resolver consolidates
	// the two fields afterwards.
	Weather = NewCodebook(
		[]string{"99", "U"},
		map[string]string{
			"1":  "blowing_sand",
			"2":  "blowing_snow",
			"3":  "clear",
			"4":  "cloudy",
			"5":  "fog_smog_smoke",
			"6":  "freezing_rain",
			"7":  "rain",
			"8":  "severe_crosswinds",
			"9":  "sleet_hail",
			"10": "snow",
			"98": "other",
		})

	RoadCondition = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"0": "dry",
			"1": "wet",
			"2": "sand_mud_gravel",
			"3": "snow_covered",
			"4": "slush",
			"5": "ice",
			"6": "ice_patches",
			"7": "water_standing_moving",
			"8": "other",
		})

	Illumination = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "daylight",
			"2": "dark_no_street_lights",
			"3": "dark_street_lights",
			"4": "dusk",
			"5": "dawn",
			"6": "dark_unknown_lighting",
			"8": "other",
		})

	UrbanRural = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "rural",
			"2": "urbanized",
			"3": "urban",
		})

	DayOfWeek = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "sunday",
			"2": "monday",
			"3": "tuesday",
			"4": "wednesday",
			"5": "thursday",
			"6": "friday",
			"7": "saturday",
		})

	RelationToRoad = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "on_roadway",
			"2": "shoulder",
			"3": "median",
			"4": "roadside",
			"5": "outside_trafficway",
			"6": "parking_lane",
		})

	CollisionType = NewCodebook(
		[]string{"99", "U"},
		map[string]string{
			"0": "non_collision",
			"1": "rear_end",
			"2": "head_on",
			"3": "backing",
			"4": "angle",
			"5": "sideswipe_same_dir",
			"6": "sideswipe_opposite_dir",
			"7": "hit_fixed_object",
			"8": "hit_pedestrian",
			"9": "other",
		})

	// InjurySeverity is the source of the binary outcome label. The killed
	// and suspected_serious_injury labels are the positive class.
	InjurySeverity = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"0": "not_injured",
			"1": "killed",
			"2": "suspected_serious_injury",
			"3": "suspected_minor_injury",
			"4": "possible_injury",
			"8": "injury_unknown_severity",
		})

	// UnitType discriminates the cyclist rows: only units whose type resolves
	// into PedalCycleTypes survive the person/unit join.
	UnitType = NewCodebook(
		[]string{"99", "U"},
		map[string]string{
			"1":  "automobile",
			"2":  "motorcycle",
			"3":  "bus",
			"4":  "small_truck",
			"5":  "heavy_truck",
			"6":  "suv",
			"7":  "van",
			"8":  "atv",
			"20": "bicycle",
			"21": "other_pedalcycle",
		})

	VehRole = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"0": "non_collision",
			"1": "striking",
			"2": "struck",
			"3": "striking_struck",
		})

	VehPosition = NewCodebook(
		[]string{"9", "99", "U"},
		map[string]string{
			"1": "travel_lane",
			"2": "left_turn_lane",
			"3": "right_turn_lane",
			"4": "shoulder",
			"5": "sidewalk",
			"6": "crosswalk",
			"7": "parking_lane",
			"8": "bike_lane",
		})

	VehMovement = NewCodebook(
		[]string{"99", "U"},
		map[string]string{
			"1":  "going_straight",
			"2":  "slowing_stopping",
			"3":  "stopped_in_traffic",
			"4":  "passing",
			"5":  "leaving_parked",
			"6":  "parked",
			"7":  "entering_parked",
			"8":  "turning_left",
			"9":  "turning_right",
			"10": "changing_lanes",
			"11": "merging",
			"12": "backing",
			"13": "negotiating_curve",
		})

	Grade = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "level",
			"2": "uphill",
			"3": "downhill",
			"4": "bottom_of_hill",
			"5": "crest_of_hill",
		})

	Alignment = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "straight",
			"2": "curve_left",
			"3": "curve_right",
		})

	// RestraintHelmet mixes occupant restraint and cyclist helmet codes, as
	// the source form does.
	RestraintHelmet = NewCodebook(
		[]string{"9", "99", "U"},
		map[string]string{
			"0":  "none_used",
			"1":  "shoulder_and_lap_belt",
			"2":  "lap_belt_only",
			"3":  "shoulder_belt_only",
			"4":  "child_seat",
			"10": "helmet_worn",
			"11": "helmet_improperly_worn",
			"12": "no_helmet",
		})

	Sex = NewCodebook(
		[]string{"U", "R"},
		map[string]string{
			"M": "male",
			"F": "female",
		})

	PersonType = NewCodebook(
		[]string{"9", "U"},
		map[string]string{
			"1": "driver",
			"2": "passenger",
			"7": "pedestrian",
			"8": "other",
		})
)

// PedalCycleTypes is the unit-type category set that marks a person as the
// cyclist during the join.
var PedalCycleTypes = map[string]struct{}{
	"bicycle":          {},
	"other_pedalcycle": {},
}

// IsPedalCycle reports whether a resolved unit-type label is a pedal cycle.
func IsPedalCycle(label string) bool {
	_, ok := PedalCycleTypes[label]
	return ok
}
