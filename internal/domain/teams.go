package domain

import "fmt"

// Team is static reference data for one NHL franchise. The catalog is fixed
// at build time and never mutated.
type Team struct {
	ID           int
	Abbreviation string
	City         string
	Name         string
	LogoURL      string
}

// IsUnknown reports whether this is the sentinel for a team the catalog does
// not know about.
func (t Team) IsUnknown() bool {
	return t.ID == 0
}

// LogoMarkdown renders the team logo as an inline markdown image.
func (t Team) LogoMarkdown() string {
	return fmt.Sprintf("![%s](%s)", t.Abbreviation, t.LogoURL)
}

// TableEntry renders the team cell used in post tables: logo plus abbreviation.
func (t Team) TableEntry() string {
	return fmt.Sprintf("%s %s", t.LogoMarkdown(), t.Abbreviation)
}

// TeamUnknown is returned by abbreviation lookups for codes the feed uses
// that are not in the catalog.
var TeamUnknown = Team{ID: 0, Abbreviation: "ERR", City: "Error", Name: "Error"}

var teams = []Team{
	{ID: 1, Abbreviation: "NJD", City: "New Jersey", Name: "Devils", LogoURL: "https://lemmy.ca/pictrs/image/eb1a001e-6e70-4cee-b412-6ffc41755d51.png"},
	{ID: 2, Abbreviation: "NYI", City: "New York", Name: "Islanders", LogoURL: "https://lemmy.ca/pictrs/image/9901d131-6f32-4bc2-8013-6a1037c1d4db.png"},
	{ID: 3, Abbreviation: "NYR", City: "New York", Name: "Rangers", LogoURL: "https://lemmy.ca/pictrs/image/7061371d-fe61-4237-bf32-fa68b2a316cd.png"},
	{ID: 4, Abbreviation: "PHI", City: "Philadelphia", Name: "Flyers", LogoURL: "https://lemmy.ca/pictrs/image/8866c84a-e374-42f6-aab5-8184c0612e0d.png"},
	{ID: 5, Abbreviation: "PIT", City: "Pittsburgh", Name: "Penguins", LogoURL: "https://lemmy.ca/pictrs/image/3b955364-fc3a-4a6e-b2b1-2b3cd062b4c0.png"},
	{ID: 6, Abbreviation: "BOS", City: "Boston", Name: "Bruins", LogoURL: "https://lemmy.ca/pictrs/image/4625ed3e-4a81-4e2d-9db9-18b52b0cc2a6.png"},
	{ID: 7, Abbreviation: "BUF", City: "Buffalo", Name: "Sabres", LogoURL: "https://lemmy.ca/pictrs/image/7c7d2a09-9283-4b2c-b66a-902ce43e4c6f.png"},
	{ID: 8, Abbreviation: "MTL", City: "Montréal", Name: "Canadiens", LogoURL: "https://lemmy.ca/pictrs/image/4d9a1fc9-e62d-4ecf-9218-cf3017b30f75.png"},
	{ID: 9, Abbreviation: "OTT", City: "Ottawa", Name: "Senators", LogoURL: "https://lemmy.ca/pictrs/image/5e2c941c-23a7-49c3-aadd-76913f1d87c3.png"},
	{ID: 10, Abbreviation: "TOR", City: "Toronto Maple", Name: "Leafs", LogoURL: "https://lemmy.ca/pictrs/image/d072c25d-491e-4c38-acb7-7b313e66694d.png"},
	{ID: 12, Abbreviation: "CAR", City: "Carolina", Name: "Hurricanes", LogoURL: "https://lemmy.ca/pictrs/image/b37d627b-c321-42dd-bc1e-c760efee3400.png"},
	{ID: 13, Abbreviation: "FLA", City: "Florida", Name: "Panthers", LogoURL: "https://lemmy.ca/pictrs/image/3475a4e4-4941-40b3-91e3-9a3157a3eed2.png"},
	{ID: 14, Abbreviation: "TBL", City: "Tampa Bay", Name: "Lightning", LogoURL: "https://lemmy.ca/pictrs/image/303d7183-54ac-403e-9917-d2cb59657aaf.png"},
	{ID: 15, Abbreviation: "WSH", City: "Washington", Name: "Capitals", LogoURL: "https://lemmy.ca/pictrs/image/045d8587-6591-4ab6-8414-819cfcea5029.png"},
	{ID: 16, Abbreviation: "CHI", City: "Chicago", Name: "Blackhawks", LogoURL: "https://lemmy.ca/pictrs/image/fdb4d79b-b6c7-495f-b936-36a5a95b27c0.png"},
	{ID: 17, Abbreviation: "DET", City: "Detroit", Name: "Red Wings", LogoURL: "https://lemmy.ca/pictrs/image/7c482335-5915-4e46-86fe-64f0839e7367.png"},
	{ID: 18, Abbreviation: "NSH", City: "Nashville", Name: "Predators", LogoURL: "https://lemmy.ca/pictrs/image/f4556171-a3a4-4f10-98ce-4764ff897444.png"},
	{ID: 19, Abbreviation: "STL", City: "St. Louis", Name: "Blues", LogoURL: "https://lemmy.ca/pictrs/image/d287c13b-d74e-4050-bbab-c7061b62bf4c.png"},
	{ID: 20, Abbreviation: "CGY", City: "Calgary", Name: "Flames", LogoURL: "https://lemmy.ca/pictrs/image/1a7a673a-810a-4254-8280-348985c2c57e.png"},
	{ID: 21, Abbreviation: "COL", City: "Colorado", Name: "Avalanche", LogoURL: "https://lemmy.ca/pictrs/image/3061fba5-f972-42b2-a89e-2c57ab0dabd6.png"},
	{ID: 22, Abbreviation: "EDM", City: "Edmonton", Name: "Oilers", LogoURL: "https://lemmy.ca/pictrs/image/b777f4cf-da58-421a-88fc-682a11d6105a.png"},
	{ID: 23, Abbreviation: "VAN", City: "Vancouver", Name: "Canucks", LogoURL: "https://lemmy.ca/pictrs/image/a65aa2c0-f5d5-4c6c-8bbe-09c35aebff6f.png"},
	{ID: 24, Abbreviation: "ANA", City: "Anaheim", Name: "Ducks", LogoURL: "https://lemmy.ca/pictrs/image/9efd8b21-3414-4e4f-8be3-559809ec133a.png"},
	{ID: 25, Abbreviation: "DAL", City: "Dallas", Name: "Stars", LogoURL: "https://lemmy.ca/pictrs/image/dade02ae-46d7-4f66-b38e-0e280dce2081.png"},
	{ID: 26, Abbreviation: "LAK", City: "Los Angeles", Name: "Kings", LogoURL: "https://lemmy.ca/pictrs/image/ffa7e866-dd9a-430b-a3a1-61ef62dff3d9.png"},
	{ID: 28, Abbreviation: "SJS", City: "San Jose", Name: "Sharks", LogoURL: "https://lemmy.ca/pictrs/image/a278e5aa-6f6f-4cdb-a0dc-03630b03a3a9.png"},
	{ID: 29, Abbreviation: "CBJ", City: "Columbus", Name: "Blue Jackets", LogoURL: "https://lemmy.ca/pictrs/image/af857875-5612-47f7-8015-01b431cb2044.png"},
	{ID: 30, Abbreviation: "MIN", City: "Minnesota", Name: "Wild", LogoURL: "https://lemmy.ca/pictrs/image/a54a2083-557e-4e54-8343-329e31aa09c6.png"},
	{ID: 52, Abbreviation: "WPG", City: "Winnipeg", Name: "Jets", LogoURL: "https://lemmy.ca/pictrs/image/b0dd50ff-5d09-4ca2-b846-150ca37d92ab.png"},
	{ID: 53, Abbreviation: "ARI", City: "Arizona", Name: "Coyotes", LogoURL: "https://lemmy.ca/pictrs/image/c700df7c-41d6-405b-81c2-7b7610aa400b.png"},
	{ID: 54, Abbreviation: "VGK", City: "Vegas", Name: "Golden Knights", LogoURL: "https://lemmy.ca/pictrs/image/20aaabff-312a-437f-8247-825fc137d33e.png"},
	{ID: 55, Abbreviation: "SEA", City: "Seattle", Name: "Kraken", LogoURL: "https://lemmy.ca/pictrs/image/e8edb628-f3a4-40df-b6a0-7752152ad7b3.png"},
}

var (
	teamsByID   = make(map[int]Team, len(teams))
	teamsByAbbr = make(map[string]Team, len(teams))
)

func init() {
	for _, t := range teams {
		teamsByID[t.ID] = t
		teamsByAbbr[t.Abbreviation] = t
	}
}

// AllTeams returns the full catalog.
func AllTeams() []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

// TeamByID looks a team up by its numeric feed ID.
func TeamByID(id int) (Team, bool) {
	t, ok := teamsByID[id]
	return t, ok
}

// TeamByAbbreviation looks a team up by short code. Feed data is not
// guaranteed to use known codes, so misses return TeamUnknown rather than
// failing.
func TeamByAbbreviation(abbr string) Team {
	if t, ok := teamsByAbbr[abbr]; ok {
		return t
	}
	return TeamUnknown
}
