package matching

import (
	"strings"

	"github.com/jpierre/resume-insights/internal/types"
)

// Category keyword and code tables. These are data, not logic: the cascade in
// categoryRules evaluates them in a fixed priority order, and the order is
// load-bearing. The statistics prefix guards in the security, software
// engineering, and core CS rules keep STA courses from being claimed by
// keyword coincidence before the theory rule can see them.

// excludedCodes are course numbers removed from categorized output entirely.
var excludedCodes = []string{
	"CIS4905", // individual study
	"CIS4940", // internship
	"CIS4912", // senior research
	"EGN4912", // engineering research
}

// excludedNameParts mark generic credit vehicles rather than subjects.
var excludedNameParts = []string{
	"independent study",
	"individual study",
	"teaching",
	"learning assistant",
	"senior project",
	"practical work",
	"internship",
	"overseas study",
	"study abroad",
}

// specialTopicsNumber appears in special-topics course codes across
// departments (e.g. CIS4930, COP4930).
const specialTopicsNumber = "4930"

// statsPrefix is the statistics department prefix. Stats courses reach the
// theory rule unless their name carries an ML-adjacent keyword.
const statsPrefix = "STA"

var aiKeywords = []string{
	"machine learning",
	"artificial intelligence",
	"deep learning",
	"neural network",
	"natural language",
	"nlp",
	"computer vision",
	"intelligent system",
	"data mining",
	"pattern recognition",
}

// statsMLKeywords promote an STA course into AI & Machine Learning.
var statsMLKeywords = []string{
	"statistical learning",
	"machine learning",
	"data science",
	"regression",
	"bayesian",
}

var aiCodes = []string{"CAP4630", "CAP4613", "CAP4641", "CAP4770", "CAP4410"}

var securityKeywords = []string{
	"security",
	"cryptography",
	"cryptology",
	"privacy",
	"forensics",
	"penetration",
	"malware",
}

var securityCodes = []string{"CNT4403", "CIS4360", "CIS4204"}

var graphicsKeywords = []string{
	"graphics",
	"game",
	"visualization",
	"rendering",
	"animation",
	"multimedia",
	"user interface",
	"user experience",
	"ui/ux",
	"human-computer",
	"hci",
	"virtual reality",
	"augmented reality",
}

var graphicsCodes = []string{"CAP4720", "CEN4725", "CAP4053"}

var softwareEngKeywords = []string{
	"software engineering",
	"software development",
	"software testing",
	"devops",
	"agile",
	"mobile app",
	"android",
	"ios development",
}

var softwareEngCodes = []string{"CEN3031", "CEN4072", "CEN4721"}

var dataKeywords = []string{
	"database",
	"data science",
	"big data",
	"data engineering",
	"data warehousing",
	"cloud computing",
	"distributed computing",
	"information systems",
}

var dataCodes = []string{"COP4710", "CIS4301"}

// systemsRelocatedCode is categorized as Systems & Hardware even though its
// code prefix would otherwise fall through to Core CS.
const systemsRelocatedCode = "COP4600"

// hardwarePrefixes are the electrical/computer engineering departments.
var hardwarePrefixes = []string{"CDA", "EEL", "EEE"}

var systemsKeywords = []string{
	"operating system",
	"computer architecture",
	"computer organization",
	"network",
	"embedded",
	"hardware",
	"concurrency",
	"concurrent",
	"parallel",
	"microprocessor",
}

var systemsCodes = []string{"CNT4007", "CDA3101"}

// coreRelocatedCodes are codes pulled out of Core CS by earlier rules; the
// core rule must not reclaim them through its keyword list.
var coreRelocatedCodes = []string{"COP4600", "CDA3101"}

var coreKeywords = []string{
	"data structure",
	"algorithm",
	"programming",
	"compiler",
	"computer science",
	"object-oriented",
	"object oriented",
}

var coreCodes = []string{"COP3502", "COP3503", "COP3530", "COP4533", "CIS3020"}

// mathPrefixes are the mathematics and statistics departments.
var mathPrefixes = []string{"MAC", "MAD", "MAS", "MHF", "STA", "COT"}

var theoryKeywords = []string{
	"theory",
	"discrete math",
	"combinatorics",
	"linear algebra",
	"probability",
	"statistics",
	"calculus",
	"numerical",
	"logic",
	"automata",
}

const theoryCode = "COT3100"

// genericCSPrefixes catch remaining computer science department codes that no
// subject rule claimed.
var genericCSPrefixes = []string{"COP", "CEN", "CIS"}

// categoryRule pairs a predicate with the label it assigns. Rules are
// evaluated in order; the first match wins and no later rule runs.
type categoryRule struct {
	label types.CategoryLabel
	match func(code, name string) bool
}

// categoryRules is the ordered cascade. Inputs arrive uppercased (code) and
// lowercased (name).
var categoryRules = []categoryRule{
	{types.CategoryExcluded, func(code, name string) bool {
		return codeIn(code, excludedCodes) ||
			nameContainsAny(name, excludedNameParts) ||
			strings.Contains(code, specialTopicsNumber)
	}},
	{types.CategoryAIMachineLearning, func(code, name string) bool {
		return nameContainsAny(name, aiKeywords) ||
			codeIn(code, aiCodes) ||
			(strings.HasPrefix(code, statsPrefix) && nameContainsAny(name, statsMLKeywords))
	}},
	{types.CategorySecurityPrivacy, func(code, name string) bool {
		return !strings.HasPrefix(code, statsPrefix) &&
			(nameContainsAny(name, securityKeywords) || codeIn(code, securityCodes))
	}},
	{types.CategoryGraphicsMedia, func(code, name string) bool {
		return nameContainsAny(name, graphicsKeywords) || codeIn(code, graphicsCodes)
	}},
	{types.CategorySoftwareEngineering, func(code, name string) bool {
		return !strings.HasPrefix(code, statsPrefix) &&
			(nameContainsAny(name, softwareEngKeywords) || codeIn(code, softwareEngCodes))
	}},
	{types.CategoryDataDatabases, func(code, name string) bool {
		return nameContainsAny(name, dataKeywords) || codeIn(code, dataCodes)
	}},
	{types.CategorySystemsHardware, func(code, name string) bool {
		return code == systemsRelocatedCode ||
			hasAnyPrefix(code, hardwarePrefixes) ||
			nameContainsAny(name, systemsKeywords) ||
			codeIn(code, systemsCodes)
	}},
	{types.CategoryCoreCS, func(code, name string) bool {
		return !codeIn(code, coreRelocatedCodes) &&
			!strings.HasPrefix(code, statsPrefix) &&
			(nameContainsAny(name, coreKeywords) || codeIn(code, coreCodes))
	}},
	{types.CategoryTheoryMath, func(code, name string) bool {
		return hasAnyPrefix(code, mathPrefixes) ||
			nameContainsAny(name, theoryKeywords) ||
			code == theoryCode
	}},
	{types.CategoryCoreCS, func(code, _ string) bool {
		return hasAnyPrefix(code, genericCSPrefixes)
	}},
}

// Categorize assigns exactly one category label to a (code, name) pair. The
// function is total: any input that no rule claims falls through to
// Theory & Math.
func Categorize(code, name string) types.CategoryLabel {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))
	normalizedName := strings.ToLower(name)

	for _, rule := range categoryRules {
		if rule.match(normalizedCode, normalizedName) {
			return rule.label
		}
	}

	return types.CategoryTheoryMath
}

func nameContainsAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

func codeIn(code string, codes []string) bool {
	for _, candidate := range codes {
		if code == candidate {
			return true
		}
	}
	return false
}

func hasAnyPrefix(code string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}
