package polish_go

// / The version number of the current release.
const kPolishVersion = "1.2.0"

func Version() string { return kPolishVersion }
