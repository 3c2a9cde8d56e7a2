package config

import (
	"bytes"

	"github.com/arthur-debert/combogen/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const sampleHeader = `# combogen configuration
#
# Every placeholder {tN} in the template is replaced by each value in
# talent_values, for every position N in talent_positions. The output file
# holds one block per combination, separated by a blank line, and is
# written to each directory in destinations.

`

const sampleTemplate = `monk="ww_monk-{t1}-0-{t3}-0-0-{t6}-{t7}"
talents={t1}0{t3}00{t6}{t7}
level=100
race=blood_elf
role=dps
position=back
spec=windwalker

actions.precombat=flask,type=greater_draenic_agility_flask
actions.precombat+=/food,type=clefthoof_sausages
actions.precombat+=/snapshot_stats

head=bladefang_hood,id=124580,bonus_id=487:648
neck=vexed_chain,id=124610,bonus_id=487:648
shoulder=bladefang_spaulders,id=124588,bonus_id=486:648
back=marshwater_cloak,id=124616,bonus_id=488:648
chest=bladefang_chestguard,id=124567,bonus_id=490:648
wrist=bladefang_bracers,id=124564,bonus_id=486:648
hands=bladefang_gauntlets,id=124576,bonus_id=490:648
waist=bladefang_belt,id=124592,bonus_id=488:648
legs=bladefang_gauntlets,id=124576,bonus_id=489:648
feet=bladefang_boots,id=124572,bonus_id=490:648
finger1=arduous_circle,id=124604,bonus_id=488:648
finger2=arduous_band,id=124598,bonus_id=488:648
trinket1=saberblade_insignia,id=124622,bonus_id=604:647
trinket2=spineshard_crest,id=124623,bonus_id=604:648
main_hand=hammer_of_wicked_infusion,id=124371
off_hand=hammer_of_wicked_infusion,id=124371
`

// Sample returns a starter configuration with a windwalker monk template.
func Sample() *Config {
	return &Config{
		ClassName:         "monk",
		SpecName:          "Windwalker",
		OutputFilename:    "ww_monk_talent_combinations.txt",
		PlaceholderPrefix: "t",
		Positions:         []int{1, 3, 6, 7},
		Values:            []string{"1", "2", "3"},
		Template:          sampleTemplate,
		Destinations:      []string{"out"},
		MaxCombinations:   1000000,
	}
}

// Encode renders cfg as a commented TOML document.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(sampleHeader)

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
