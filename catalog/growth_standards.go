package catalog

import "github.com/nourcare/childcare-api/catalog/entities"

// WHO child growth standards, 0-24 months, five percentile columns per
// reference age. Values follow the WHO growth standard tables; ages are the
// reference month points the chart aligns measurements against.

var weightForAgeBoys = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 2.5, P15: 2.9, P50: 3.3, P85: 3.9, P97: 4.3},
	{AgeMonths: 1, P3: 3.4, P15: 3.9, P50: 4.5, P85: 5.1, P97: 5.7},
	{AgeMonths: 2, P3: 4.4, P15: 4.9, P50: 5.6, P85: 6.3, P97: 7.0},
	{AgeMonths: 3, P3: 5.1, P15: 5.6, P50: 6.4, P85: 7.2, P97: 7.9},
	{AgeMonths: 4, P3: 5.6, P15: 6.2, P50: 7.0, P85: 7.9, P97: 8.6},
	{AgeMonths: 6, P3: 6.4, P15: 7.1, P50: 7.9, P85: 8.9, P97: 9.7},
	{AgeMonths: 9, P3: 7.2, P15: 7.9, P50: 8.9, P85: 10.0, P97: 11.0},
	{AgeMonths: 12, P3: 7.8, P15: 8.6, P50: 9.6, P85: 10.8, P97: 11.8},
	{AgeMonths: 15, P3: 8.4, P15: 9.2, P50: 10.3, P85: 11.6, P97: 12.8},
	{AgeMonths: 18, P3: 8.9, P15: 9.7, P50: 10.9, P85: 12.3, P97: 13.7},
	{AgeMonths: 24, P3: 9.8, P15: 10.8, P50: 12.2, P85: 13.9, P97: 15.3},
}

var weightForAgeGirls = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 2.4, P15: 2.8, P50: 3.2, P85: 3.7, P97: 4.2},
	{AgeMonths: 1, P3: 3.2, P15: 3.6, P50: 4.2, P85: 4.8, P97: 5.4},
	{AgeMonths: 2, P3: 4.0, P15: 4.5, P50: 5.1, P85: 5.9, P97: 6.5},
	{AgeMonths: 3, P3: 4.6, P15: 5.1, P50: 5.8, P85: 6.7, P97: 7.4},
	{AgeMonths: 4, P3: 5.1, P15: 5.6, P50: 6.4, P85: 7.3, P97: 8.1},
	{AgeMonths: 6, P3: 5.8, P15: 6.4, P50: 7.3, P85: 8.3, P97: 9.2},
	{AgeMonths: 9, P3: 6.6, P15: 7.3, P50: 8.2, P85: 9.3, P97: 10.4},
	{AgeMonths: 12, P3: 7.1, P15: 7.9, P50: 8.9, P85: 10.2, P97: 11.3},
	{AgeMonths: 15, P3: 7.7, P15: 8.5, P50: 9.6, P85: 11.0, P97: 12.4},
	{AgeMonths: 18, P3: 8.2, P15: 9.1, P50: 10.2, P85: 11.8, P97: 13.3},
	{AgeMonths: 24, P3: 9.2, P15: 10.2, P50: 11.5, P85: 13.3, P97: 15.0},
}

var heightForAgeBoys = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 46.3, P15: 48.0, P50: 49.9, P85: 51.8, P97: 53.4},
	{AgeMonths: 1, P3: 51.1, P15: 52.7, P50: 54.7, P85: 56.7, P97: 58.4},
	{AgeMonths: 2, P3: 54.7, P15: 56.4, P50: 58.4, P85: 60.5, P97: 62.2},
	{AgeMonths: 3, P3: 57.6, P15: 59.3, P50: 61.4, P85: 63.5, P97: 65.3},
	{AgeMonths: 4, P3: 60.0, P15: 61.7, P50: 63.9, P85: 66.0, P97: 67.8},
	{AgeMonths: 6, P3: 63.6, P15: 65.4, P50: 67.6, P85: 69.8, P97: 71.6},
	{AgeMonths: 9, P3: 67.7, P15: 69.6, P50: 72.0, P85: 74.5, P97: 76.4},
	{AgeMonths: 12, P3: 71.3, P15: 73.3, P50: 75.7, P85: 78.4, P97: 80.6},
	{AgeMonths: 15, P3: 74.4, P15: 76.5, P50: 79.1, P85: 82.0, P97: 84.2},
	{AgeMonths: 18, P3: 77.2, P15: 79.5, P50: 82.3, P85: 85.3, P97: 87.7},
	{AgeMonths: 24, P3: 82.1, P15: 84.6, P50: 87.8, P85: 91.0, P97: 93.6},
}

var heightForAgeGirls = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 45.6, P15: 47.2, P50: 49.1, P85: 51.1, P97: 52.7},
	{AgeMonths: 1, P3: 50.0, P15: 51.7, P50: 53.7, P85: 55.7, P97: 57.4},
	{AgeMonths: 2, P3: 53.2, P15: 55.0, P50: 57.1, P85: 59.2, P97: 60.9},
	{AgeMonths: 3, P3: 55.8, P15: 57.6, P50: 59.8, P85: 62.0, P97: 63.8},
	{AgeMonths: 4, P3: 58.0, P15: 59.8, P50: 62.1, P85: 64.3, P97: 66.2},
	{AgeMonths: 6, P3: 61.5, P15: 63.4, P50: 65.7, P85: 68.1, P97: 70.0},
	{AgeMonths: 9, P3: 65.6, P15: 67.5, P50: 70.1, P85: 72.8, P97: 74.7},
	{AgeMonths: 12, P3: 69.2, P15: 71.3, P50: 74.0, P85: 76.9, P97: 79.2},
	{AgeMonths: 15, P3: 72.4, P15: 74.6, P50: 77.5, P85: 80.7, P97: 83.0},
	{AgeMonths: 18, P3: 75.2, P15: 77.5, P50: 80.7, P85: 84.0, P97: 86.5},
	{AgeMonths: 24, P3: 80.3, P15: 82.9, P50: 86.4, P85: 90.1, P97: 92.9},
}

var headCircumferenceForAgeBoys = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 32.4, P15: 33.4, P50: 34.5, P85: 35.6, P97: 36.6},
	{AgeMonths: 1, P3: 35.1, P15: 36.1, P50: 37.3, P85: 38.4, P97: 39.5},
	{AgeMonths: 2, P3: 36.9, P15: 37.9, P50: 39.1, P85: 40.3, P97: 41.3},
	{AgeMonths: 3, P3: 38.1, P15: 39.1, P50: 40.5, P85: 41.7, P97: 42.7},
	{AgeMonths: 4, P3: 39.2, P15: 40.2, P50: 41.6, P85: 42.9, P97: 43.9},
	{AgeMonths: 6, P3: 40.9, P15: 41.9, P50: 43.3, P85: 44.6, P97: 45.6},
	{AgeMonths: 9, P3: 42.5, P15: 43.5, P50: 45.0, P85: 46.3, P97: 47.4},
	{AgeMonths: 12, P3: 43.5, P15: 44.6, P50: 46.1, P85: 47.4, P97: 48.5},
	{AgeMonths: 15, P3: 44.2, P15: 45.3, P50: 46.8, P85: 48.2, P97: 49.3},
	{AgeMonths: 18, P3: 44.7, P15: 45.8, P50: 47.4, P85: 48.7, P97: 49.9},
	{AgeMonths: 24, P3: 45.5, P15: 46.6, P50: 48.3, P85: 49.6, P97: 50.8},
}

var headCircumferenceForAgeGirls = []entities.WHOPercentile{
	{AgeMonths: 0, P3: 31.9, P15: 32.9, P50: 33.9, P85: 35.1, P97: 36.1},
	{AgeMonths: 1, P3: 34.2, P15: 35.2, P50: 36.5, P85: 37.8, P97: 38.8},
	{AgeMonths: 2, P3: 35.8, P15: 36.9, P50: 38.3, P85: 39.5, P97: 40.5},
	{AgeMonths: 3, P3: 37.1, P15: 38.2, P50: 39.5, P85: 40.8, P97: 41.9},
	{AgeMonths: 4, P3: 38.1, P15: 39.2, P50: 40.6, P85: 41.9, P97: 43.0},
	{AgeMonths: 6, P3: 39.6, P15: 40.7, P50: 42.2, P85: 43.5, P97: 44.6},
	{AgeMonths: 9, P3: 41.2, P15: 42.3, P50: 43.8, P85: 45.2, P97: 46.3},
	{AgeMonths: 12, P3: 42.2, P15: 43.3, P50: 44.9, P85: 46.3, P97: 47.4},
	{AgeMonths: 15, P3: 43.0, P15: 44.1, P50: 45.7, P85: 47.1, P97: 48.3},
	{AgeMonths: 18, P3: 43.6, P15: 44.7, P50: 46.2, P85: 47.8, P97: 48.9},
	{AgeMonths: 24, P3: 44.4, P15: 45.6, P50: 47.2, P85: 48.8, P97: 50.0},
}
