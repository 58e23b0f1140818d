// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nicknames

// builtin is the shipped nickname table. Where an informal name is in
// common use for more than one canonical name (chris, alex, sam, phil)
// a single mapping was chosen; matters that need the other reading
// override it with a custom entry.
var builtin = map[string]string{
	// Common male nicknames
	"bill":    "william",
	"billy":   "william",
	"will":    "william",
	"bob":     "robert",
	"bobby":   "robert",
	"rob":     "robert",
	"robbie":  "robert",
	"dick":    "richard",
	"rick":    "richard",
	"ricky":   "richard",
	"rich":    "richard",
	"richie":  "richard",
	"jim":     "james",
	"jimmy":   "james",
	"jamie":   "james",
	"joe":     "joseph",
	"joey":    "joseph",
	"mike":    "michael",
	"mickey":  "michael",
	"mick":    "michael",
	"dave":    "david",
	"davey":   "david",
	"dan":     "daniel",
	"danny":   "daniel",
	"tom":     "thomas",
	"tommy":   "thomas",
	"matt":    "matthew",
	"steve":   "stephen",
	"phil":    "phillip",
	"tony":    "anthony",
	"andy":    "andrew",
	"drew":    "andrew",
	"nick":    "nicholas",
	"john":    "jonathan",
	"johnny":  "jonathan",
	"ben":     "benjamin",
	"benny":   "benjamin",
	"sammy":   "samuel",
	"ed":      "edward",
	"eddie":   "edward",
	"ted":     "edward",
	"teddy":   "edward",
	"charlie": "charles",
	"chuck":   "charles",
	"tim":     "timothy",

	// Common female nicknames
	"liz":     "elizabeth",
	"lizzy":   "elizabeth",
	"beth":    "elizabeth",
	"betty":   "elizabeth",
	"lisa":    "elizabeth",
	"sue":     "susan",
	"susie":   "susan",
	"suzy":    "susan",
	"kate":    "katherine",
	"katie":   "katherine",
	"kathy":   "katherine",
	"kit":     "katherine",
	"kitty":   "katherine",
	"jen":     "jennifer",
	"jenny":   "jennifer",
	"jess":    "jessica",
	"jessie":  "jessica",
	"mel":     "melissa",
	"amy":     "amanda",
	"mandy":   "amanda",
	"chris":   "christine",
	"chrissy": "christine",
	"tina":    "christina",
	"cindy":   "cynthia",
	"patty":   "patricia",
	"pat":     "patricia",
	"trish":   "patricia",
	"nancy":   "nan",
	"ann":     "anne",
	"annie":   "anne",
	"maggie":  "margaret",
	"meg":     "margaret",
	"peggy":   "margaret",
	"carol":   "caroline",
	"carrie":  "caroline",
	"julie":   "julia",
	"jules":   "julia",
	"marie":   "mary",
	"sally":   "sarah",
	"sara":    "sarah",
	"alex":    "alexandra",
	"lexi":    "alexandra",
	"sam":     "samantha",
	"sammie":  "samantha",
}
