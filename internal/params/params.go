package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// MinBase and MaxBase bound the radix of an encoded share value.
	// Digits are '0'-'9' followed by 'a'-'z', so 36 is the largest base we can express.
	MinBase = 2
	MaxBase = 36

	// DefaultCoefficientBits is the size of the random coefficients used when dealing shares.
	DefaultCoefficientBits = SecParam

	// DefaultInputFile is read when the CLI is given no file arguments.
	DefaultInputFile = "input.json"
)
