package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/dice"
	"github.com/whiskerworks/adventure-engine/pkg/text"
)

// spendResult reports how an attack roll's leftover symbols were spent.
type spendResult struct {
	IsCrit   bool
	Messages []string
}

// spendAttackSymbols spends an attack roll's triumphs, advantages,
// disadvantages and despairs, banking the resulting dice on the combat's
// roll modifiers for the appropriate side. attackerIsCat picks which side
// "own" means.
func (c *Combat) spendAttackSymbols(result dice.Result, critRating int, attackerIsCat bool, attackerName string, r *rand.Rand) spendResult {
	own := &c.CatModifiers
	enemy := &c.EnemyModifiers
	if !attackerIsCat {
		own, enemy = enemy, own
	}

	var spend spendResult

	// A Triumph activates a crit before anything else.
	triumphs := result.Triumphs
	if triumphs > 0 {
		spend.IsCrit = true
		spend.Messages = append(spend.Messages,
			fmt.Sprintf("%s spends a Triumph to activate a crit!", attackerName))
		triumphs--
	}

	// Remaining triumphs each upgrade a roll: own side's next roll, or the
	// difficulty of the opposing side's.
	ownUpgrades, enemyUpgrades := 0, 0
	for ; triumphs > 0; triumphs-- {
		if r.IntN(2) == 1 {
			ownUpgrades++
			own.Upgrades++
		} else {
			enemyUpgrades++
			enemy.DifficultyUpgrades++
		}
	}
	if spent := ownUpgrades + enemyUpgrades; spent > 0 {
		header := fmt.Sprintf("%s spends %d %s", attackerName, spent, text.Plural("Triumph", spent))
		switch {
		case ownUpgrades > 0 && enemyUpgrades > 0:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to upgrade the next ally roll %d %s and upgrade the difficulty of the next opponent's roll %d %s.",
				header, ownUpgrades, text.Plural("time", ownUpgrades),
				enemyUpgrades, text.Plural("time", enemyUpgrades)))
		case ownUpgrades > 0:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to upgrade the next ally roll %d %s.",
				header, ownUpgrades, text.Plural("time", ownUpgrades)))
		default:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to upgrade the difficulty of the next opponent's roll %d %s.",
				header, enemyUpgrades, text.Plural("time", enemyUpgrades)))
		}
	}

	// Advantages can buy the crit instead, at the weapon's crit rating.
	advantages := result.Advantages
	if advantages >= critRating && !spend.IsCrit {
		spend.IsCrit = true
		spend.Messages = append(spend.Messages,
			fmt.Sprintf("%s spends %d Advantages to activate a crit!", attackerName, critRating))
		advantages -= critRating
	}

	// Pairs of advantages force Setbacks on the opponents; a leftover
	// single one buys an ally a Boost.
	ownBoosts, enemySetbacks := 0, 0
	if advantages > 0 {
		spent := advantages
		for advantages >= 2 {
			enemySetbacks++
			enemy.Setback++
			advantages -= 2
		}
		if advantages == 1 {
			ownBoosts++
			own.Boost++
			advantages--
		}
		header := fmt.Sprintf("%s spends %d %s", attackerName, spent, text.Plural("Advantage", spent))
		switch {
		case ownBoosts > 0 && enemySetbacks > 0:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to grant allies %d Boost %s and force the opponents to take %d Setback %s on the next roll.",
				header, ownBoosts, text.Plural("die", ownBoosts),
				enemySetbacks, text.Plural("die", enemySetbacks)))
		case enemySetbacks > 0:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to force the opponents to take %d Setback %s on the next roll.",
				header, enemySetbacks, text.Plural("die", enemySetbacks)))
		default:
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"%s to grant allies %d Boost %s on the next roll.",
				header, ownBoosts, text.Plural("die", ownBoosts)))
		}
	}

	// Despairs each inflict a random penalty on the attacker's own side.
	for despairs := result.Despairs; despairs > 0; despairs-- {
		switch r.IntN(3) {
		case 0:
			own.DifficultyUpgrades++
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"Because %s rolled a Despair, the next ally roll will have upgraded difficulty.", attackerName))
		case 1:
			enemy.Boost++
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"Because %s rolled a Despair, the opponents' next roll will get an additional Boost die.", attackerName))
		default:
			own.Setback++
			spend.Messages = append(spend.Messages, fmt.Sprintf(
				"Because %s rolled a Despair, the next ally will have to take an additional Setback die on their roll.", attackerName))
		}
	}

	// Net disadvantages come in pairs too; a leftover single one fizzles.
	ownSetbacks, enemyBoosts := 0, 0
	for disadvantages := -advantages; disadvantages >= 2; disadvantages -= 2 {
		if r.IntN(2) == 1 {
			ownSetbacks++
			own.Setback++
		} else {
			enemyBoosts++
			enemy.Boost++
		}
	}
	if enemyBoosts > 0 {
		spend.Messages = append(spend.Messages, fmt.Sprintf(
			"%s's opponents get %d additional Boost %s on the next roll due to the Disadvantages.",
			attackerName, enemyBoosts, text.Plural("die", enemyBoosts)))
	}
	if ownSetbacks > 0 {
		spend.Messages = append(spend.Messages, fmt.Sprintf(
			"%s's allies get %d additional Setback %s on the next roll due to the Disadvantages.",
			attackerName, ownSetbacks, text.Plural("die", ownSetbacks)))
	}

	return spend
}
