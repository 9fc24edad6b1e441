package riskengine

// riskTable holds 10-year risk of fatal cardiovascular events in percent,
// indexed by [sex][smoking][age band][systolic BP band][LDL band].
//
// Age bands run 40-44 through 85-89, systolic BP bands 100-119, 120-139,
// 140-159 and 160-179 mmHg, LDL bands 2.2-3.1, 3.2-4.1, 4.2-5.1 and
// 5.2-6.1 mmol/L.
var riskTable = [sexCount][2][ageBandCount][bpBandCount][ldlBandCount]float64{
	{ // female
		{ // non-smoker
			{{0.2, 0.3, 0.3, 0.3}, {0.3, 0.3, 0.4, 0.4}, {0.4, 0.4, 0.5, 0.6}, {0.5, 0.6, 0.7, 0.7}}, // 40-44
			{{0.3, 0.4, 0.4, 0.5}, {0.4, 0.5, 0.5, 0.6}, {0.6, 0.6, 0.7, 0.8}, {0.7, 0.8, 0.9, 1.1}}, // 45-49
			{{0.5, 0.5, 0.6, 0.7}, {0.6, 0.7, 0.8, 0.9}, {0.8, 0.9, 1.0, 1.2}, {1.0, 1.2, 1.4, 1.5}}, // 50-54
			{{0.7, 0.7, 0.9, 1.0}, {0.9, 1.0, 1.1, 1.3}, {1.1, 1.3, 1.5, 1.7}, {1.5, 1.7, 1.9, 2.2}}, // 55-59
			{{0.9, 1.1, 1.2, 1.4}, {1.2, 1.4, 1.6, 1.8}, {1.6, 1.9, 2.1, 2.4}, {2.2, 2.5, 2.8, 3.2}}, // 60-64
			{{1.4, 1.5, 1.8, 2.0}, {1.8, 2.0, 2.3, 2.6}, {2.3, 2.7, 3.0, 3.5}, {3.1, 3.5, 4.0, 4.5}}, // 65-69
			{{1.9, 2.2, 2.5, 2.9}, {2.6, 2.9, 3.3, 3.8}, {3.4, 3.8, 4.3, 4.9}, {4.4, 5.0, 5.7, 6.5}}, // 70-74
			{{2.8, 3.2, 3.6, 4.1}, {3.7, 4.2, 4.7, 5.4}, {4.8, 5.5, 6.2, 7.0}, {6.3, 7.1, 8.1, 9.2}}, // 75-79
			{{4.0, 4.5, 5.2, 5.9}, {5.2, 5.9, 6.7, 7.7}, {6.9, 7.8, 8.8, 10.0}, {8.9, 10.1, 11.5, 13.0}}, // 80-84
			{{5.7, 6.5, 7.3, 8.3}, {7.5, 8.4, 9.6, 10.8}, {9.7, 11.0, 12.4, 14.1}, {12.6, 14.3, 16.1, 18.1}}, // 85-89
		},
		{ // smoker
			{{0.4, 0.5, 0.6, 0.6}, {0.6, 0.6, 0.7, 0.8}, {0.7, 0.8, 1.0, 1.1}, {1.0, 1.1, 1.3, 1.5}}, // 40-44
			{{0.6, 0.7, 0.8, 0.9}, {0.8, 0.9, 1.0, 1.2}, {1.0, 1.2, 1.3, 1.5}, {1.4, 1.6, 1.8, 2.0}}, // 45-49
			{{0.8, 0.9, 1.1, 1.2}, {1.1, 1.2, 1.4, 1.6}, {1.4, 1.6, 1.9, 2.1}, {1.9, 2.2, 2.5, 2.8}}, // 50-54
			{{1.2, 1.3, 1.5, 1.7}, {1.5, 1.7, 2.0, 2.2}, {2.0, 2.3, 2.6, 3.0}, {2.6, 3.0, 3.4, 3.9}}, // 55-59
			{{1.6, 1.8, 2.1, 2.4}, {2.1, 2.4, 2.7, 3.1}, {2.8, 3.2, 3.6, 4.1}, {3.7, 4.2, 4.7, 5.4}}, // 60-64
			{{2.2, 2.5, 2.9, 3.3}, {2.9, 3.3, 3.8, 4.3}, {3.8, 4.4, 5.0, 5.6}, {5.0, 5.7, 6.5, 7.4}}, // 65-69
			{{3.1, 3.5, 4.0, 4.5}, {4.0, 4.6, 5.2, 5.9}, {5.3, 6.0, 6.8, 7.7}, {6.9, 7.9, 8.9, 10.1}}, // 70-74
			{{4.2, 4.8, 5.5, 6.2}, {5.6, 6.3, 7.2, 8.1}, {7.3, 8.2, 9.3, 10.6}, {9.5, 10.7, 12.1, 13.7}}, // 75-79
			{{5.8, 6.6, 7.5, 8.5}, {7.6, 8.6, 9.8, 11.0}, {9.9, 11.2, 12.7, 14.3}, {12.9, 14.5, 16.4, 18.5}}, // 80-84
			{{7.9, 9.0, 10.2, 11.5}, {10.3, 11.7, 13.2, 14.9}, {13.4, 15.2, 17.1, 19.2}, {17.3, 19.5, 21.9, 24.6}}, // 85-89
		},
	},
	{ // male
		{ // non-smoker
			{{0.5, 0.6, 0.7, 0.8}, {0.6, 0.7, 0.9, 1.0}, {0.8, 1.0, 1.1, 1.3}, {1.1, 1.3, 1.5, 1.8}}, // 40-44
			{{0.7, 0.8, 0.9, 1.1}, {0.9, 1.1, 1.2, 1.5}, {1.2, 1.4, 1.6, 1.9}, {1.6, 1.8, 2.2, 2.5}}, // 45-49
			{{1.0, 1.2, 1.4, 1.6}, {1.3, 1.5, 1.8, 2.1}, {1.7, 2.0, 2.3, 2.7}, {2.3, 2.6, 3.1, 3.6}}, // 50-54
			{{1.4, 1.7, 1.9, 2.3}, {1.9, 2.2, 2.6, 3.0}, {2.5, 2.9, 3.4, 3.9}, {3.2, 3.8, 4.4, 5.1}}, // 55-59
			{{2.0, 2.4, 2.8, 3.3}, {2.7, 3.1, 3.7, 4.3}, {3.5, 4.1, 4.8, 5.6}, {4.6, 5.4, 6.3, 7.3}}, // 60-64
			{{2.9, 3.4, 4.0, 4.7}, {3.9, 4.5, 5.2, 6.1}, {5.1, 5.9, 6.8, 8.0}, {6.6, 7.7, 8.9, 10.4}}, // 65-69
			{{4.2, 4.9, 5.7, 6.6}, {5.5, 6.4, 7.4, 8.7}, {7.2, 8.4, 9.7, 11.3}, {9.4, 10.9, 12.6, 14.6}}, // 70-74
			{{6.0, 7.0, 8.1, 9.4}, {7.8, 9.1, 10.6, 12.2}, {10.2, 11.8, 13.7, 15.8}, {13.2, 15.3, 17.7, 20.3}}, // 75-79
			{{8.5, 9.9, 11.5, 13.3}, {11.1, 12.8, 14.8, 17.1}, {14.3, 16.6, 19.1, 22.0}, {18.5, 21.3, 24.4, 27.9}}, // 80-84
			{{12.0, 13.9, 16.1, 18.5}, {15.5, 17.9, 20.6, 23.7}, {20.0, 23.0, 26.3, 30.0}, {25.5, 29.1, 33.2, 37.6}}, // 85-89
		},
		{ // smoker
			{{0.9, 1.1, 1.3, 1.5}, {1.2, 1.4, 1.7, 2.0}, {1.6, 1.9, 2.2, 2.6}, {2.1, 2.5, 2.9, 3.4}}, // 40-44
			{{1.3, 1.5, 1.8, 2.1}, {1.7, 2.0, 2.3, 2.7}, {2.3, 2.6, 3.1, 3.6}, {3.0, 3.5, 4.0, 4.7}}, // 45-49
			{{1.8, 2.1, 2.5, 2.9}, {2.4, 2.8, 3.2, 3.8}, {3.1, 3.6, 4.3, 5.0}, {4.1, 4.8, 5.6, 6.5}}, // 50-54
			{{2.5, 2.9, 3.4, 4.0}, {3.3, 3.8, 4.5, 5.2}, {4.3, 5.0, 5.9, 6.8}, {5.7, 6.6, 7.7, 8.9}}, // 55-59
			{{3.5, 4.0, 4.7, 5.5}, {4.6, 5.3, 6.2, 7.2}, {6.0, 6.9, 8.1, 9.4}, {7.8, 9.1, 10.5, 12.2}}, // 60-64
			{{4.8, 5.6, 6.5, 7.6}, {6.3, 7.3, 8.5, 9.9}, {8.2, 9.5, 11.0, 12.8}, {10.7, 12.4, 14.3, 16.5}}, // 65-69
			{{6.6, 7.7, 8.9, 10.3}, {8.6, 10.0, 11.6, 13.4}, {11.2, 13.0, 15.0, 17.3}, {14.5, 16.7, 19.3, 22.2}}, // 70-74
			{{9.0, 10.5, 12.1, 14.0}, {11.7, 13.6, 15.7, 18.1}, {15.2, 17.5, 20.2, 23.2}, {19.5, 22.4, 25.7, 29.4}}, // 75-79
			{{12.2, 14.2, 16.4, 18.9}, {15.8, 18.3, 21.0, 24.1}, {20.4, 23.4, 26.8, 30.5}, {26.0, 29.6, 33.7, 38.2}}, // 80-84
			{{16.5, 19.0, 21.9, 25.1}, {21.2, 24.3, 27.8, 31.7}, {27.0, 30.8, 35.0, 39.6}, {34.0, 38.5, 43.3, 48.6}}, // 85-89
		},
	},
}
