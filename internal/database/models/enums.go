package models

// Drivetrain defines the closed set of drivetrain choices on the pit form
type Drivetrain string

const (
	DrivetrainUnspecified Drivetrain = ""
	DrivetrainTank        Drivetrain = "Tank/West Coast"
	DrivetrainSwerve      Drivetrain = "Swerve"
	DrivetrainMecanum     Drivetrain = "Mecanum"
	DrivetrainHDrive      Drivetrain = "H-Drive"
	DrivetrainOther       Drivetrain = "Other"
)

// ProgrammingLanguage defines the closed set of language choices on the pit form
type ProgrammingLanguage string

const (
	ProgrammingLanguageUnspecified ProgrammingLanguage = ""
	ProgrammingLanguageJava        ProgrammingLanguage = "Java"
	ProgrammingLanguageCpp         ProgrammingLanguage = "C++"
	ProgrammingLanguagePython      ProgrammingLanguage = "Python"
	ProgrammingLanguageLabVIEW     ProgrammingLanguage = "LabVIEW"
	ProgrammingLanguageOther       ProgrammingLanguage = "Other"
)

// Alliance is one of the two three-team groups competing in a match
type Alliance string

const (
	AllianceUnspecified Alliance = ""
	AllianceRed         Alliance = "Red"
	AllianceBlue        Alliance = "Blue"
)

// EndgameStatus defines the closed set of endgame outcomes on the match form
type EndgameStatus string

const (
	EndgameUnspecified EndgameStatus = ""
	EndgameNone        EndgameStatus = "None"
	EndgameParked      EndgameStatus = "Parked"
	EndgameClimbedLow  EndgameStatus = "Climbed - Low"
	EndgameClimbedMid  EndgameStatus = "Climbed - Mid"
	EndgameClimbedHigh EndgameStatus = "Climbed - High"
	EndgameHarmony     EndgameStatus = "Harmony Bonus"
)

// MatchType defines the competition phase of a scheduled match
type MatchType string

const (
	MatchTypeQualification MatchType = "Qualification"
	MatchTypeQuarterfinal  MatchType = "Quarterfinal"
	MatchTypeSemifinal     MatchType = "Semifinal"
	MatchTypeFinal         MatchType = "Final"
)

// IsValid checks if the Drivetrain is valid
func (d Drivetrain) IsValid() bool {
	switch d {
	case DrivetrainUnspecified, DrivetrainTank, DrivetrainSwerve, DrivetrainMecanum, DrivetrainHDrive, DrivetrainOther:
		return true
	}
	return false
}

// IsValid checks if the ProgrammingLanguage is valid
func (p ProgrammingLanguage) IsValid() bool {
	switch p {
	case ProgrammingLanguageUnspecified, ProgrammingLanguageJava, ProgrammingLanguageCpp, ProgrammingLanguagePython, ProgrammingLanguageLabVIEW, ProgrammingLanguageOther:
		return true
	}
	return false
}

// IsValid checks if the Alliance is valid
func (a Alliance) IsValid() bool {
	switch a {
	case AllianceUnspecified, AllianceRed, AllianceBlue:
		return true
	}
	return false
}

// IsValid checks if the EndgameStatus is valid
func (e EndgameStatus) IsValid() bool {
	switch e {
	case EndgameUnspecified, EndgameNone, EndgameParked, EndgameClimbedLow, EndgameClimbedMid, EndgameClimbedHigh, EndgameHarmony:
		return true
	}
	return false
}

// IsValid checks if the MatchType is valid
func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeQualification, MatchTypeQuarterfinal, MatchTypeSemifinal, MatchTypeFinal:
		return true
	}
	return false
}
