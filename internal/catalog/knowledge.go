package catalog

// compatibilityRule describes one known-incompatible pairing of declared
// versions: when keyA is declared at exactly versionA and keyB is
// declared below minB, the catalog is rejected.
type compatibilityRule struct {
	KeyA     string // version key that triggers the rule
	VersionA string // exact declared value that triggers the rule
	KeyB     string // version key the requirement applies to
	MinB     string // minimum acceptable value for keyB
	NameA    string // display name used in the error message
	NameB    string
}

// compatibilityMatrix holds the known-incompatible tool pairings.
// Extend by adding rows, not branches.
var compatibilityMatrix = []compatibilityRule{
	{KeyA: "agp", VersionA: "8.11.1", KeyB: "kotlin", MinB: "1.9.0", NameA: "AGP", NameB: "Kotlin"},
	{KeyA: "agp", VersionA: "8.0.0", KeyB: "kotlin", MinB: "1.8.10", NameA: "AGP", NameB: "Kotlin"},
	{KeyA: "compose-compiler", VersionA: "1.5.0", KeyB: "kotlin", MinB: "1.9.0", NameA: "Compose compiler", NameB: "Kotlin"},
}

// vulnerableVersions maps version keys to released versions with known
// security advisories. Matches produce warnings, never errors.
var vulnerableVersions = map[string][]string{
	"junit":   {"4.11", "4.12"},
	"log4j":   {"2.14.0", "2.14.1"},
	"jackson": {"2.9.10"},
	"gson":    {"2.8.5"},
	"okhttp":  {"3.12.0"},
}

// criticalTestingFragments are lowercase name fragments of well-known
// testing libraries. A catalog mentioning none of them is missing its
// testing dependencies.
var criticalTestingFragments = []string{
	"junit",
	"testng",
	"kotest",
	"mockito",
	"espresso",
	"robolectric",
}
