package main

const (
	// defaultCount specifies amount of distinct keys inserted by run command.
	defaultCount = 1_000_000

	// defaultRemoveFraction specifies share of inserted keys removed afterwards by run command.
	defaultRemoveFraction = 0.5

	// defaultRounds specifies amount of random operations performed by verify command.
	defaultRounds = 200_000

	// defaultKeySpace limits keys used by verify command so that removals hit existing keys often.
	defaultKeySpace = 4096

	// defaultCheckEvery specifies how often verify command validates the whole tree.
	defaultCheckEvery = 1000

	// avlHeightFactor bounds AVL tree height: h <= 1.4405 * log2(n+2).
	avlHeightFactor = 1.4405
)
