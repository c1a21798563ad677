package physiqueRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			gender,
			height_cm,
			created_at,
			updated_at
		) VALUES (
			:id,
			:gender,
			:height_cm,
			:created_at,
			:updated_at
		)
		ON CONFLICT (id) DO NOTHING
	`

	queryGetUserByID = `
		SELECT
			id,
			gender,
			height_cm,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryCreateScan = `
		INSERT INTO scans (
			id,
			user_id,
			scan_date,
			is_baseline,
			front_pose_data,
			side_pose_data,
			overall_score,
			scores_json,
			body_type,
			frame,
			strong_areas_json,
			growth_areas_json,
			key_insight
		) VALUES (
			:id,
			:user_id,
			:scan_date,
			:is_baseline,
			:front_pose_data,
			:side_pose_data,
			:overall_score,
			:scores_json,
			:body_type,
			:frame,
			:strong_areas_json,
			:growth_areas_json,
			:key_insight
		)
	`

	queryGetScanByID = `
		SELECT
			id,
			user_id,
			scan_date,
			is_baseline,
			front_pose_data,
			side_pose_data,
			overall_score,
			scores_json,
			body_type,
			frame,
			strong_areas_json,
			growth_areas_json,
			key_insight
		FROM scans
		WHERE id = :id
	`

	queryGetBaselineScan = `
		SELECT
			id,
			user_id,
			scan_date,
			is_baseline,
			front_pose_data,
			side_pose_data,
			overall_score,
			scores_json,
			body_type,
			frame,
			strong_areas_json,
			growth_areas_json,
			key_insight
		FROM scans
		WHERE user_id = :user_id AND is_baseline = TRUE
		ORDER BY scan_date ASC
		LIMIT 1
	`

	queryGetScansByUserID = `
		SELECT
			id,
			user_id,
			scan_date,
			is_baseline,
			front_pose_data,
			side_pose_data,
			overall_score,
			scores_json,
			body_type,
			frame,
			strong_areas_json,
			growth_areas_json,
			key_insight
		FROM scans
		WHERE user_id = :user_id
		ORDER BY scan_date DESC
		LIMIT :limit
	`

	querySaveBaselineMetrics = `
		INSERT INTO baseline_metrics (
			id,
			user_id,
			baseline_scan_id,
			shoulder_hip_ratio,
			waist_shoulder_ratio,
			arm_leg_ratio,
			shoulder_width_normalized,
			hip_width_normalized,
			created_at
		) VALUES (
			:id,
			:user_id,
			:baseline_scan_id,
			:shoulder_hip_ratio,
			:waist_shoulder_ratio,
			:arm_leg_ratio,
			:shoulder_width_normalized,
			:hip_width_normalized,
			:created_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			baseline_scan_id = EXCLUDED.baseline_scan_id,
			shoulder_hip_ratio = EXCLUDED.shoulder_hip_ratio,
			waist_shoulder_ratio = EXCLUDED.waist_shoulder_ratio,
			arm_leg_ratio = EXCLUDED.arm_leg_ratio,
			shoulder_width_normalized = EXCLUDED.shoulder_width_normalized,
			hip_width_normalized = EXCLUDED.hip_width_normalized
	`

	queryGetBaselineMetrics = `
		SELECT
			id,
			user_id,
			baseline_scan_id,
			shoulder_hip_ratio,
			waist_shoulder_ratio,
			arm_leg_ratio,
			shoulder_width_normalized,
			hip_width_normalized,
			created_at
		FROM baseline_metrics
		WHERE user_id = :user_id
	`

	querySaveProgression = `
		INSERT INTO progression (
			id,
			user_id,
			scan_id,
			days_since_baseline,
			overall_score_delta,
			shoulder_score_delta,
			chest_score_delta,
			core_score_delta,
			v_taper_score_delta,
			symmetry_score_delta,
			posture_score_delta,
			arms_score_delta,
			created_at
		) VALUES (
			:id,
			:user_id,
			:scan_id,
			:days_since_baseline,
			:overall_score_delta,
			:shoulder_score_delta,
			:chest_score_delta,
			:core_score_delta,
			:v_taper_score_delta,
			:symmetry_score_delta,
			:posture_score_delta,
			:arms_score_delta,
			:created_at
		)
	`

	queryGetProgressionByUserID = `
		SELECT
			id,
			user_id,
			scan_id,
			days_since_baseline,
			overall_score_delta,
			shoulder_score_delta,
			chest_score_delta,
			core_score_delta,
			v_taper_score_delta,
			symmetry_score_delta,
			posture_score_delta,
			arms_score_delta,
			created_at
		FROM progression
		WHERE user_id = :user_id
		ORDER BY created_at ASC
	`
)
