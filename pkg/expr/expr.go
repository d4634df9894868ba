package expr

import "go.mongodb.org/mongo-driver/bson"

// Aggregation system variables.
const (
	Root    = "$$ROOT"
	Current = "$$CURRENT"
	Remove  = "$$REMOVE"
	Keep    = "$$KEEP"
	Descend = "$$DESCEND"
	Prune   = "$$PRUNE"
)

// Eq returns a $eq expression.
func Eq(a, b any) bson.M { return bson.M{"$eq": bson.A{a, b}} }

// Ne returns a $ne expression.
func Ne(a, b any) bson.M { return bson.M{"$ne": bson.A{a, b}} }

// Gt returns a $gt expression.
func Gt(a, b any) bson.M { return bson.M{"$gt": bson.A{a, b}} }

// Gte returns a $gte expression.
func Gte(a, b any) bson.M { return bson.M{"$gte": bson.A{a, b}} }

// Lt returns a $lt expression.
func Lt(a, b any) bson.M { return bson.M{"$lt": bson.A{a, b}} }

// Lte returns a $lte expression.
func Lte(a, b any) bson.M { return bson.M{"$lte": bson.A{a, b}} }

// In returns a $in expression.
func In(value, array any) bson.M { return bson.M{"$in": bson.A{value, array}} }

// Nin returns a $nin expression.
func Nin(value, array any) bson.M { return bson.M{"$nin": bson.A{value, array}} }

// And returns a $and expression over the operands.
func And(operands ...any) bson.M { return bson.M{"$and": bson.A(operands)} }

// Or returns a $or expression over the operands.
func Or(operands ...any) bson.M { return bson.M{"$or": bson.A(operands)} }

// Not returns a $not expression.
func Not(operand any) bson.M { return bson.M{"$not": operand} }

// Cond returns a $cond expression with explicit if/then/else branches.
func Cond(ifExpr, then, otherwise any) bson.M {
	return bson.M{"$cond": bson.M{"if": ifExpr, "then": then, "else": otherwise}}
}

// IfNull returns a $ifNull expression.
func IfNull(expression, replacement any) bson.M {
	return bson.M{"$ifNull": bson.A{expression, replacement}}
}

// Coalesce returns a $coalesce expression.
func Coalesce(expressions ...any) bson.M { return bson.M{"$coalesce": bson.A(expressions)} }

// Sum returns a $sum expression.
func Sum(expressions ...any) bson.M { return bson.M{"$sum": bson.A(expressions)} }

// Avg returns a $avg expression.
func Avg(expressions ...any) bson.M { return bson.M{"$avg": bson.A(expressions)} }

// Min returns a $min expression.
func Min(expressions ...any) bson.M { return bson.M{"$min": bson.A(expressions)} }

// Max returns a $max expression.
func Max(expressions ...any) bson.M { return bson.M{"$max": bson.A(expressions)} }

// Push returns a $push accumulator.
func Push(expression any) bson.M { return bson.M{"$push": expression} }

// AddToSet returns an $addToSet accumulator.
func AddToSet(expression any) bson.M { return bson.M{"$addToSet": expression} }

// First returns a $first accumulator.
func First(expression any) bson.M { return bson.M{"$first": expression} }

// Last returns a $last accumulator.
func Last(expression any) bson.M { return bson.M{"$last": expression} }

// ArrayElemAt returns an $arrayElemAt expression.
func ArrayElemAt(array any, idx int) bson.M {
	return bson.M{"$arrayElemAt": bson.A{array, idx}}
}

// Concat returns a $concat expression.
func Concat(expressions ...any) bson.M { return bson.M{"$concat": bson.A(expressions)} }

// Substr returns a $substr expression.
func Substr(s any, start, length int) bson.M {
	return bson.M{"$substr": bson.A{s, start, length}}
}

// ToLower returns a $toLower expression.
func ToLower(expression any) bson.M { return bson.M{"$toLower": expression} }

// ToUpper returns a $toUpper expression.
func ToUpper(expression any) bson.M { return bson.M{"$toUpper": expression} }

// Strcasecmp returns a $strcasecmp expression.
func Strcasecmp(a, b any) bson.M { return bson.M{"$strcasecmp": bson.A{a, b}} }

// DateFromString returns a $dateFromString expression. An empty format
// omits the format field.
func DateFromString(dateString, format string) bson.M {
	doc := bson.M{"dateString": dateString}
	if format != "" {
		doc["format"] = format
	}
	return bson.M{"$dateFromString": doc}
}

// DateToString returns a $dateToString expression. An empty format omits
// the format field.
func DateToString(date any, format string) bson.M {
	doc := bson.M{"date": date}
	if format != "" {
		doc["format"] = format
	}
	return bson.M{"$dateToString": doc}
}

// Year returns a $year expression.
func Year(date any) bson.M { return bson.M{"$year": date} }

// Month returns a $month expression.
func Month(date any) bson.M { return bson.M{"$month": date} }

// DayOfMonth returns a $dayOfMonth expression.
func DayOfMonth(date any) bson.M { return bson.M{"$dayOfMonth": date} }

// Hour returns an $hour expression.
func Hour(date any) bson.M { return bson.M{"$hour": date} }

// Minute returns a $minute expression.
func Minute(date any) bson.M { return bson.M{"$minute": date} }

// Second returns a $second expression.
func Second(date any) bson.M { return bson.M{"$second": date} }

// Millisecond returns a $millisecond expression.
func Millisecond(date any) bson.M { return bson.M{"$millisecond": date} }

// DayOfWeek returns a $dayOfWeek expression.
func DayOfWeek(date any) bson.M { return bson.M{"$dayOfWeek": date} }

// DayOfYear returns a $dayOfYear expression.
func DayOfYear(date any) bson.M { return bson.M{"$dayOfYear": date} }

// Week returns a $week expression.
func Week(date any) bson.M { return bson.M{"$week": date} }

// ISOWeek returns an $isoWeek expression.
func ISOWeek(date any) bson.M { return bson.M{"$isoWeek": date} }

// ISODayOfWeek returns an $isoDayOfWeek expression.
func ISODayOfWeek(date any) bson.M { return bson.M{"$isoDayOfWeek": date} }

// ISOYear returns an $isoYear expression.
func ISOYear(date any) bson.M { return bson.M{"$isoYear": date} }

// Size returns a $size expression.
func Size(array any) bson.M { return bson.M{"$size": array} }

// Slice returns a $slice expression.
func Slice(array any, n int) bson.M { return bson.M{"$slice": bson.A{array, n}} }

// Map returns a $map expression.
func Map(input any, as string, in any) bson.M {
	return bson.M{"$map": bson.M{"input": input, "as": as, "in": in}}
}

// Filter returns a $filter expression.
func Filter(input any, as string, cond any) bson.M {
	return bson.M{"$filter": bson.M{"input": input, "as": as, "cond": cond}}
}

// Reduce returns a $reduce expression.
func Reduce(input, initialValue, in any) bson.M {
	return bson.M{"$reduce": bson.M{"input": input, "initialValue": initialValue, "in": in}}
}

// Zip returns a $zip expression. A nil defaults slice omits the defaults
// field.
func Zip(inputs bson.A, useLongestLength bool, defaults bson.A) bson.M {
	doc := bson.M{"inputs": inputs, "useLongestLength": useLongestLength}
	if len(defaults) > 0 {
		doc["defaults"] = defaults
	}
	return bson.M{"$zip": doc}
}

// InRange returns an $inRange expression.
func InRange(expression, start, end any, inclusive bool) bson.M {
	return bson.M{"$inRange": bson.M{"expr": expression, "start": start, "end": end, "inclusive": inclusive}}
}

// IndexOfArray returns an $indexOfArray expression. Bounds are optional:
// the first is the start index, the second the end index.
func IndexOfArray(array, search any, bounds ...int) bson.M {
	doc := bson.M{"array": array, "search": search}
	if len(bounds) > 0 {
		doc["start"] = bounds[0]
	}
	if len(bounds) > 1 {
		doc["end"] = bounds[1]
	}
	return bson.M{"$indexOfArray": doc}
}

// IndexOfBytes returns an $indexOfBytes expression with optional
// start/end bounds.
func IndexOfBytes(s, substring any, bounds ...int) bson.M {
	doc := bson.M{"string": s, "substring": substring}
	if len(bounds) > 0 {
		doc["start"] = bounds[0]
	}
	if len(bounds) > 1 {
		doc["end"] = bounds[1]
	}
	return bson.M{"$indexOfBytes": doc}
}

// IndexOfCP returns an $indexOfCP expression with optional start/end
// bounds.
func IndexOfCP(s, substring any, bounds ...int) bson.M {
	doc := bson.M{"string": s, "substring": substring}
	if len(bounds) > 0 {
		doc["start"] = bounds[0]
	}
	if len(bounds) > 1 {
		doc["end"] = bounds[1]
	}
	return bson.M{"$indexOfCP": doc}
}

// Split returns a $split expression.
func Split(s, delimiter any) bson.M { return bson.M{"$split": bson.A{s, delimiter}} }

// StrLenBytes returns a $strLenBytes expression.
func StrLenBytes(s any) bson.M { return bson.M{"$strLenBytes": s} }

// StrLenCP returns a $strLenCP expression.
func StrLenCP(s any) bson.M { return bson.M{"$strLenCP": s} }

// SubstrBytes returns a $substrBytes expression.
func SubstrBytes(s any, start, count int) bson.M {
	return bson.M{"$substrBytes": bson.A{s, start, count}}
}

// SubstrCP returns a $substrCP expression.
func SubstrCP(s any, start, count int) bson.M {
	return bson.M{"$substrCP": bson.A{s, start, count}}
}

// ToDecimal returns a $toDecimal expression.
func ToDecimal(expression any) bson.M { return bson.M{"$toDecimal": expression} }

// ToDouble returns a $toDouble expression.
func ToDouble(expression any) bson.M { return bson.M{"$toDouble": expression} }

// ToInt returns a $toInt expression.
func ToInt(expression any) bson.M { return bson.M{"$toInt": expression} }

// ToLong returns a $toLong expression.
func ToLong(expression any) bson.M { return bson.M{"$toLong": expression} }

// ToObjectID returns a $toObjectId expression.
func ToObjectID(expression any) bson.M { return bson.M{"$toObjectId": expression} }

// ToString returns a $toString expression.
func ToString(expression any) bson.M { return bson.M{"$toString": expression} }

// Trunc returns a $trunc expression.
func Trunc(expression any) bson.M { return bson.M{"$trunc": expression} }

// Ceil returns a $ceil expression.
func Ceil(expression any) bson.M { return bson.M{"$ceil": expression} }

// Floor returns a $floor expression.
func Floor(expression any) bson.M { return bson.M{"$floor": expression} }

// Round returns a $round expression. An optional place selects the digit
// to round to.
func Round(expression any, place ...int) bson.M {
	if len(place) > 0 {
		return bson.M{"$round": bson.A{expression, place[0]}}
	}
	return bson.M{"$round": expression}
}

// Abs returns an $abs expression.
func Abs(expression any) bson.M { return bson.M{"$abs": expression} }

// Exp returns an $exp expression.
func Exp(expression any) bson.M { return bson.M{"$exp": expression} }

// Ln returns an $ln expression.
func Ln(expression any) bson.M { return bson.M{"$ln": expression} }

// Log10 returns a $log10 expression.
func Log10(expression any) bson.M { return bson.M{"$log10": expression} }

// Sqrt returns a $sqrt expression.
func Sqrt(expression any) bson.M { return bson.M{"$sqrt": expression} }

// Pow returns a $pow expression.
func Pow(base, exponent any) bson.M { return bson.M{"$pow": bson.A{base, exponent}} }

// Mod returns a $mod expression.
func Mod(dividend, divisor any) bson.M { return bson.M{"$mod": bson.A{dividend, divisor}} }

// Add returns an $add expression.
func Add(expressions ...any) bson.M { return bson.M{"$add": bson.A(expressions)} }

// Subtract returns a $subtract expression.
func Subtract(a, b any) bson.M { return bson.M{"$subtract": bson.A{a, b}} }

// Multiply returns a $multiply expression.
func Multiply(expressions ...any) bson.M { return bson.M{"$multiply": bson.A(expressions)} }

// Divide returns a $divide expression.
func Divide(a, b any) bson.M { return bson.M{"$divide": bson.A{a, b}} }
