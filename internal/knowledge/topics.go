package knowledge

// Category groups knowledge points into broad content areas.
type Category string

const (
	CategoryBasicMath    Category = "Basic Math"
	CategoryAlgebra      Category = "Algebra"
	CategorySequences    Category = "Sequences"
	CategoryFunctions    Category = "Functions"
	CategoryCalculus     Category = "Calculus"
	CategoryTrigonometry Category = "Trigonometry"
	CategoryGeometry     Category = "Geometry"
	CategoryLogarithms   Category = "Logarithms"
	CategoryStatistics   Category = "Statistics"
	CategoryNumberTheory Category = "Number Theory"
	CategoryOther        Category = "Other"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBasicMath,
		CategoryAlgebra,
		CategorySequences,
		CategoryFunctions,
		CategoryCalculus,
		CategoryTrigonometry,
		CategoryGeometry,
		CategoryLogarithms,
		CategoryStatistics,
		CategoryNumberTheory,
		CategoryOther,
	}
}

// Relation describes a knowledge point's place in the curriculum:
// which points must logically precede it, and its category.
type Relation struct {
	Prerequisites []string
	Category      Category
}

// relations is the hand-authored prerequisite table. It is acyclic by
// construction; ValidateTable guards against regressions when editing.
var relations = map[string]Relation{
	// Basic concepts (no prerequisites)
	"absolute value":        {Category: CategoryBasicMath},
	"basic division":        {Category: CategoryBasicMath},
	"even and odd numbers":  {Category: CategoryBasicMath},
	"multiples":             {Category: CategoryBasicMath},
	"factors":               {Category: CategoryBasicMath},
	"square roots":          {Category: CategoryBasicMath},
	"exponents":             {Category: CategoryBasicMath},
	"powers":                {Prerequisites: []string{"exponents"}, Category: CategoryBasicMath},
	"fractions to decimals": {Category: CategoryBasicMath},
	"equivalent fractions":  {Category: CategoryBasicMath},
	"factorial":             {Category: CategoryBasicMath},

	// Algebra
	"linear equations":            {Prerequisites: []string{"basic division"}, Category: CategoryAlgebra},
	"linear inequalities":         {Prerequisites: []string{"linear equations"}, Category: CategoryAlgebra},
	"linear functions":            {Prerequisites: []string{"linear equations", "slope of a line"}, Category: CategoryAlgebra},
	"slope of a line":             {Prerequisites: []string{"linear equations"}, Category: CategoryAlgebra},
	"systems of linear equations": {Prerequisites: []string{"linear equations"}, Category: CategoryAlgebra},
	"quadratic function":          {Prerequisites: []string{"linear functions", "exponents"}, Category: CategoryAlgebra},
	"quadratic equations":         {Prerequisites: []string{"quadratic function"}, Category: CategoryAlgebra},
	"quadratic inequalities":      {Prerequisites: []string{"quadratic equations"}, Category: CategoryAlgebra},
	"extrema":                     {Prerequisites: []string{"quadratic function"}, Category: CategoryAlgebra},

	// Sequences
	"arithmetic sequence":  {Prerequisites: []string{"linear equations"}, Category: CategorySequences},
	"arithmetic sequences": {Prerequisites: []string{"linear equations"}, Category: CategorySequences},
	"nth term":             {Prerequisites: []string{"arithmetic sequence"}, Category: CategorySequences},
	"geometric sequence":   {Prerequisites: []string{"arithmetic sequence", "exponents"}, Category: CategorySequences},
	"sequence summation":   {Prerequisites: []string{"geometric sequence"}, Category: CategorySequences},
	"number sequences":     {Category: CategorySequences},

	// Functions
	"function evaluation":       {Prerequisites: []string{"linear equations"}, Category: CategoryFunctions},
	"monotonicity of functions": {Prerequisites: []string{"function evaluation"}, Category: CategoryFunctions},

	// Calculus
	"derivatives of polynomials": {Prerequisites: []string{"quadratic function", "exponents"}, Category: CategoryCalculus},
	"basic integration":          {Prerequisites: []string{"derivatives of polynomials"}, Category: CategoryCalculus},

	// Trigonometry
	"trigonometric identities": {Category: CategoryTrigonometry},

	// Geometry
	"types of angles":         {Category: CategoryGeometry},
	"properties of triangles": {Prerequisites: []string{"types of angles"}, Category: CategoryGeometry},
	"area of a circle":        {Category: CategoryGeometry},
	"perimeter of polygons":   {Category: CategoryGeometry},

	// Logarithms
	"logarithms":       {Prerequisites: []string{"exponents"}, Category: CategoryLogarithms},
	"exponential form": {Prerequisites: []string{"logarithms"}, Category: CategoryLogarithms},

	// Statistics
	"classical probability": {Category: CategoryStatistics},
	"mean of data":          {Category: CategoryStatistics},
	"median":                {Prerequisites: []string{"mean of data"}, Category: CategoryStatistics},

	// Number Theory
	"prime numbers":      {Prerequisites: []string{"factors", "multiples"}, Category: CategoryNumberTheory},
	"irrational numbers": {Prerequisites: []string{"square roots"}, Category: CategoryNumberTheory},
}

// RelationFor returns the curriculum relation for a topic. Topics not in
// the table fall into CategoryOther with no prerequisites.
func RelationFor(topic string) Relation {
	if r, ok := relations[topic]; ok {
		return r
	}
	return Relation{Category: CategoryOther}
}

// crossCategoryPairs is a curated list of related topics that live in
// different categories; they get extra followup links in the graph.
var crossCategoryPairs = [][2]string{
	{"linear equations", "quadratic function"},
	{"exponents", "logarithms"},
	{"derivatives of polynomials", "quadratic function"},
	{"trigonometric identities", "properties of triangles"},
	{"arithmetic sequence", "geometric sequence"},
	{"mean of data", "classical probability"},
	{"factors", "prime numbers"},
}
