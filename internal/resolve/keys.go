package resolve

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"crashprep/internal/domain"
	apperrors "crashprep/internal/errors"
)

// BackfillUnitNumbers assigns the first available unit number within a crash
// to units that arrived without one. Observed exactly once in the source
// extract, but the rule is written generally and deterministically: rows are
// visited in input order and the lowest unused positive number wins.
func BackfillUnitNumbers(logger *slog.Logger, units []domain.VehicleUnit) {
	used := make(map[string]map[int64]struct{})
	for _, u := range units {
		if u.UnitNum.Valid {
			if used[u.CRN] == nil {
				used[u.CRN] = make(map[int64]struct{})
			}
			used[u.CRN][u.UnitNum.Int64] = struct{}{}
		}
	}

	for i := range units {
		u := &units[i]
		if u.UnitNum.Valid {
			continue
		}
		if used[u.CRN] == nil {
			used[u.CRN] = make(map[int64]struct{})
		}
		n := firstAvailable(used[u.CRN])
		u.UnitNum = sql.NullInt64{Int64: n, Valid: true}
		used[u.CRN][n] = struct{}{}
		logger.Info("Backfilled missing unit number",
			slog.String("crn", u.CRN),
			slog.Int64("unit_num", n))
	}
}

// VerifyUnitKeys checks that (CRN, UnitNum) is unique after backfill. Any
// collision is a fatal KeyViolation: there is no verified repair for
// duplicate vehicle units.
func VerifyUnitKeys(units []domain.VehicleUnit) error {
	seen := make(map[domain.UnitKey]struct{}, len(units))
	for _, u := range units {
		if !u.UnitNum.Valid {
			return apperrors.NewKeyViolationError(
				fmt.Sprintf("vehicle unit in crash %s has no unit number after backfill", u.CRN))
		}
		key := u.Key()
		if _, dup := seen[key]; dup {
			return apperrors.NewKeyViolationError(
				fmt.Sprintf("duplicate vehicle unit %d in crash %s", key.UnitNum, key.CRN))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// personUnitRepairs is the finite exception table for the single verified
// person-record data-entry artifact: the record at the old key is moved to
// the listed unit so the composite key returns to uniqueness. The repair is
// scoped to these exact keys and is never generalized to other duplicates.
var personUnitRepairs = map[domain.PersonKey]int64{
	{CRN: "2019021354", UnitNum: 1, PersonNum: 1}: 2,
}

// RepairPersonKeys restores (CRN, UnitNum, PersonNum) uniqueness. The second
// occurrence of a duplicated key is the conflicting record; if it matches the
// exception table its unit number is corrected, otherwise the run fails with
// a KeyViolation rather than silently resolving an unverified duplicate.
func RepairPersonKeys(logger *slog.Logger, persons []domain.PersonRecord) error {
	seen := make(map[domain.PersonKey]struct{}, len(persons))
	for i := range persons {
		p := &persons[i]
		if !p.UnitNum.Valid || !p.PersonNum.Valid {
			return apperrors.NewKeyViolationError(
				fmt.Sprintf("person record in crash %s has an incomplete composite key", p.CRN))
		}

		key := p.Key()
		if _, dup := seen[key]; dup {
			newUnit, ok := personUnitRepairs[key]
			if !ok {
				return apperrors.NewKeyViolationError(
					fmt.Sprintf("duplicate person key (%s, %d, %d) outside the verified exception",
						key.CRN, key.UnitNum, key.PersonNum))
			}
			p.UnitNum = sql.NullInt64{Int64: newUnit, Valid: true}
			key = p.Key()
			if _, stillDup := seen[key]; stillDup {
				return apperrors.NewKeyViolationError(
					fmt.Sprintf("person key repair for crash %s collides with unit %d",
						key.CRN, key.UnitNum))
			}
			logger.Info("Repaired duplicate person key",
				slog.String("crn", p.CRN),
				slog.Int64("moved_to_unit", newUnit))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// firstAvailable returns the lowest positive number absent from the set.
func firstAvailable(used map[int64]struct{}) int64 {
	taken := make([]int64, 0, len(used))
	for n := range used {
		taken = append(taken, n)
	}
	sort.Slice(taken, func(i, j int) bool { return taken[i] < taken[j] })

	next := int64(1)
	for _, n := range taken {
		if n == next {
			next++
		} else if n > next {
			break
		}
	}
	return next
}
