package bible

import "strings"

// book es la metadata estática de un libro canónico.
type book struct {
	Number  int
	Name    string
	Abbrevs []string
}

// books contiene los 66 libros canónicos en orden canónico.
// Basado en la numeración estándar: 1-39 Antiguo Testamento, 40-66 Nuevo Testamento.
var books = []book{
	{1, "Genesis", []string{"gen", "ge", "gn"}},
	{2, "Exodus", []string{"exod", "exo", "ex"}},
	{3, "Leviticus", []string{"lev", "le", "lv"}},
	{4, "Numbers", []string{"num", "nu", "nm", "nb"}},
	{5, "Deuteronomy", []string{"deut", "deu", "dt"}},
	{6, "Joshua", []string{"josh", "jos", "jsh"}},
	{7, "Judges", []string{"judg", "jdg", "jdgs", "jg"}},
	{8, "Ruth", []string{"rut", "rth", "ru"}},
	{9, "1 Samuel", []string{"1 sam", "1 sa", "1 sm", "1 s"}},
	{10, "2 Samuel", []string{"2 sam", "2 sa", "2 sm", "2 s"}},
	{11, "1 Kings", []string{"1 kgs", "1 ki", "1 k"}},
	{12, "2 Kings", []string{"2 kgs", "2 ki", "2 k"}},
	{13, "1 Chronicles", []string{"1 chron", "1 chr", "1 ch"}},
	{14, "2 Chronicles", []string{"2 chron", "2 chr", "2 ch"}},
	{15, "Ezra", []string{"ezr"}},
	{16, "Nehemiah", []string{"neh", "ne"}},
	{17, "Esther", []string{"esth", "est", "es"}},
	{18, "Job", []string{"jb"}},
	{19, "Psalms", []string{"psalm", "psa", "pss", "psm", "ps"}},
	{20, "Proverbs", []string{"prov", "pro", "prv", "pr"}},
	{21, "Ecclesiastes", []string{"eccl", "ecc", "ec", "qoh"}},
	{22, "Song of Solomon", []string{"song of songs", "canticles", "song", "cant", "sos", "so"}},
	{23, "Isaiah", []string{"isa", "is"}},
	{24, "Jeremiah", []string{"jer", "je", "jr"}},
	{25, "Lamentations", []string{"lam", "la"}},
	{26, "Ezekiel", []string{"ezek", "eze", "ezk"}},
	{27, "Daniel", []string{"dan", "da", "dn"}},
	{28, "Hosea", []string{"hos", "ho"}},
	{29, "Joel", []string{"joe", "jl"}},
	{30, "Amos", []string{"amo", "am"}},
	{31, "Obadiah", []string{"obad", "oba", "ob"}},
	{32, "Jonah", []string{"jon", "jnh"}},
	{33, "Micah", []string{"mic", "mc"}},
	{34, "Nahum", []string{"nah", "na"}},
	{35, "Habakkuk", []string{"hab", "hb"}},
	{36, "Zephaniah", []string{"zeph", "zep", "zp"}},
	{37, "Haggai", []string{"hag", "hg"}},
	{38, "Zechariah", []string{"zech", "zec", "zc"}},
	{39, "Malachi", []string{"mal", "ml"}},
	{40, "Matthew", []string{"matt", "mat", "mt"}},
	{41, "Mark", []string{"mrk", "mk", "mr"}},
	{42, "Luke", []string{"luk", "lk"}},
	{43, "John", []string{"joh", "jhn", "jn"}},
	{44, "Acts", []string{"act", "ac"}},
	{45, "Romans", []string{"rom", "ro", "rm"}},
	{46, "1 Corinthians", []string{"1 cor", "1 co"}},
	{47, "2 Corinthians", []string{"2 cor", "2 co"}},
	{48, "Galatians", []string{"gal", "ga"}},
	{49, "Ephesians", []string{"ephes", "eph"}},
	{50, "Philippians", []string{"phil", "php", "pp"}},
	{51, "Colossians", []string{"col", "cl"}},
	{52, "1 Thessalonians", []string{"1 thess", "1 thes", "1 th"}},
	{53, "2 Thessalonians", []string{"2 thess", "2 thes", "2 th"}},
	{54, "1 Timothy", []string{"1 tim", "1 ti"}},
	{55, "2 Timothy", []string{"2 tim", "2 ti"}},
	{56, "Titus", []string{"tit", "ti"}},
	{57, "Philemon", []string{"phlm", "phm", "pm"}},
	{58, "Hebrews", []string{"heb"}},
	{59, "James", []string{"jas", "jm"}},
	{60, "1 Peter", []string{"1 pet", "1 pe", "1 pt", "1 p"}},
	{61, "2 Peter", []string{"2 pet", "2 pe", "2 pt", "2 p"}},
	{62, "1 John", []string{"1 jn", "1 jo", "1 jhn", "1 j"}},
	{63, "2 John", []string{"2 jn", "2 jo", "2 jhn", "2 j"}},
	{64, "3 John", []string{"3 jn", "3 jo", "3 jhn", "3 j"}},
	{65, "Jude", []string{"jud", "jd"}},
	{66, "Revelation", []string{"revelations", "rev", "re", "apocalypse"}},
}

// aliasIndex mapea alias normalizado → número canónico. Se construye una vez
// al arrancar el proceso y nunca se muta después.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]int {
	idx := make(map[string]int, len(books)*8)
	register := func(alias string, number int) {
		alias = NormalizeBookAlias(alias)
		if alias == "" {
			return
		}
		idx[alias] = number
		// Variante sin espacios: "1 corinthians" y "1corinthians" resuelven igual.
		spaceless := strings.ReplaceAll(alias, " ", "")
		if spaceless != alias {
			idx[spaceless] = number
		}
	}
	for _, b := range books {
		register(b.Name, b.Number)
		for _, a := range b.Abbrevs {
			register(a, b.Number)
		}
	}
	return idx
}

// NormalizeBookAlias deja el alias en minúsculas, quita todo lo que no sea
// [a-z0-9 espacio] y colapsa espacios internos. La normalización ocurre
// siempre antes del lookup, nunca dentro del índice.
func NormalizeBookAlias(s string) string {
	s = strings.ToLower(s)
	var sb strings.Builder
	sb.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t':
			if !lastSpace {
				sb.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// LookupBook resuelve un alias ya normalizado a su número canónico.
func LookupBook(alias string) (int, bool) {
	n, ok := aliasIndex[alias]
	return n, ok
}

// BookName devuelve el nombre canónico de un número de libro válido.
func BookName(number int) string {
	if number < 1 || number > len(books) {
		return ""
	}
	return books[number-1].Name
}

// IsOldTestament clasifica un número de libro: 1-39 AT, 40-66 NT.
func IsOldTestament(number int) bool {
	return number >= 1 && number <= 39
}
