// Copyright © 2025 The icelang-ls authors

package analysis

// Keywords lists the language keywords, offered by completion alongside
// declarations.
var Keywords = []string{
	"null",
	"true",
	"false",
	"set",
	"function",
	"lambda",
	"for",
	"in",
	"to",
	"while",
	"loop",
	"if",
	"else",
	"match",
	"continue",
	"break",
	"return",
}

// Builtin describes one function from the runtime's standard catalog.
type Builtin struct {
	Name   string
	Params []string
	Doc    string
}

var builtins = []Builtin{
	{
		Name:   "print",
		Params: []string{"args"},
		Doc:    "Print arguments to standard output. Example: ``` print('Hello World')```",
	},
	{
		Name: "readline",
		Doc:  "Read from standard input. Example: ```set input = readline()```",
	},
	{
		Name:   "import",
		Params: []string{"value"},
		Doc:    "Import value from a module, Example: ``` set module = import('module')```",
	},
	{
		Name:   "export",
		Params: []string{"value"},
		Doc:    "Returns a value from a script. Example: ```export(my_object)```",
	},
	{
		Name:   "type_of",
		Params: []string{"value"},
		Doc:    "Returns the type of the argument. Example: ```type_of('string') -- string```",
	},
	{
		Name:   "length",
		Params: []string{"value"},
		Doc:    "Returns the length of iterable types. Example: ```length([1, 2, 3]) -- 3```",
	},
	{
		Name:   "parse_number",
		Params: []string{"number"},
		Doc:    "Parse string to number. Example: ```parse_number('2') -- 2```",
	},
	{
		Name:   "sqrt",
		Params: []string{"number"},
		Doc:    "Returns the square root of a number",
	},
	{
		Name:   "floor",
		Params: []string{"number"},
		Doc:    "Returns the largest integer less than or equal to a number",
	},
	{
		Name:   "round",
		Params: []string{"number"},
		Doc:    "Rounds a number to the nearest integer",
	},
	{
		Name:   "ceil",
		Params: []string{"number"},
		Doc:    "Returns the smallest integer greater than or equal to a number",
	},
	{
		Name:   "pow",
		Params: []string{"number", "exp"},
		Doc:    "Raises the number to the power of exp",
	},
}

// Builtins returns the builtin catalog. The slice must not be mutated.
func Builtins() []Builtin {
	return builtins
}

// LookupBuiltin returns the catalog entry for name, or nil.
func LookupBuiltin(name string) *Builtin {
	for i := range builtins {
		if builtins[i].Name == name {
			return &builtins[i]
		}
	}
	return nil
}
