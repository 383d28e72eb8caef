package pincode

// よく使われる配送先の即答テーブル。起動時にResolverへ注入する。
// ここに無いpincodeは外部照会かプレフィックス推定に回る。
func DefaultCache() map[string]Location {
	return map[string]Location{
		"632001": {State: "Tamil Nadu", District: "Vellore"},
		"632002": {State: "Tamil Nadu", District: "Vellore"},
		"632004": {State: "Tamil Nadu", District: "Vellore"},
		"632006": {State: "Tamil Nadu", District: "Vellore"},
		"632009": {State: "Tamil Nadu", District: "Vellore"},
		"632014": {State: "Tamil Nadu", District: "Vellore"},
		"600001": {State: "Tamil Nadu", District: "Chennai"},
		"600002": {State: "Tamil Nadu", District: "Chennai"},
		"600017": {State: "Tamil Nadu", District: "Chennai"},
		"600040": {State: "Tamil Nadu", District: "Chennai"},
		"641001": {State: "Tamil Nadu", District: "Coimbatore"},
		"625001": {State: "Tamil Nadu", District: "Madurai"},
		"560001": {State: "Karnataka", District: "Bengaluru Urban"},
		"560034": {State: "Karnataka", District: "Bengaluru Urban"},
		"500001": {State: "Telangana", District: "Hyderabad"},
		"400001": {State: "Maharashtra", District: "Mumbai"},
		"110001": {State: "Delhi", District: "New Delhi"},
		"700001": {State: "West Bengal", District: "Kolkata"},
	}
}

// 先頭3桁 → state/district
func DefaultDistrictPrefixes() map[string]Location {
	return map[string]Location{
		"632": {State: "Tamil Nadu", District: "Vellore"},
		"600": {State: "Tamil Nadu", District: "Chennai"},
		"601": {State: "Tamil Nadu", District: "Tiruvallur"},
		"603": {State: "Tamil Nadu", District: "Chengalpattu"},
		"625": {State: "Tamil Nadu", District: "Madurai"},
		"636": {State: "Tamil Nadu", District: "Salem"},
		"641": {State: "Tamil Nadu", District: "Coimbatore"},
		"560": {State: "Karnataka", District: "Bengaluru Urban"},
		"570": {State: "Karnataka", District: "Mysuru"},
		"500": {State: "Telangana", District: "Hyderabad"},
		"400": {State: "Maharashtra", District: "Mumbai"},
		"411": {State: "Maharashtra", District: "Pune"},
		"110": {State: "Delhi", District: "New Delhi"},
		"682": {State: "Kerala", District: "Ernakulam"},
		"695": {State: "Kerala", District: "Thiruvananthapuram"},
		"700": {State: "West Bengal", District: "Kolkata"},
		"302": {State: "Rajasthan", District: "Jaipur"},
		"380": {State: "Gujarat", District: "Ahmedabad"},
		"226": {State: "Uttar Pradesh", District: "Lucknow"},
		"800": {State: "Bihar", District: "Patna"},
	}
}

// 先頭2桁 → state（districtまでは特定できない）
func DefaultStatePrefixes() map[string]string {
	return map[string]string{
		"11": "Delhi",
		"12": "Haryana",
		"13": "Punjab",
		"14": "Punjab",
		"20": "Uttar Pradesh",
		"22": "Uttar Pradesh",
		"23": "Madhya Pradesh",
		"30": "Rajasthan",
		"31": "Rajasthan",
		"36": "Gujarat",
		"38": "Gujarat",
		"40": "Maharashtra",
		"41": "Maharashtra",
		"44": "Maharashtra",
		"50": "Telangana",
		"51": "Andhra Pradesh",
		"52": "Andhra Pradesh",
		"56": "Karnataka",
		"57": "Karnataka",
		"58": "Karnataka",
		"60": "Tamil Nadu",
		"62": "Tamil Nadu",
		"63": "Tamil Nadu",
		"64": "Tamil Nadu",
		"67": "Kerala",
		"68": "Kerala",
		"69": "Kerala",
		"70": "West Bengal",
		"71": "West Bengal",
		"75": "Odisha",
		"78": "Assam",
		"80": "Bihar",
		"83": "Jharkhand",
	}
}
