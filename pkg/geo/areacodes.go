package geo

// areaCodeCentroids maps North American area codes to an approximate
// geographic center, used as a last-resort origin for shipping estimates
// when a listing carries nothing but a phone number.
var areaCodeCentroids = map[string]Coord{
	"201": {Lat: 40.7589, Lon: -74.0758}, // Northern NJ (Newark area)
	"202": {Lat: 38.9072, Lon: -77.0369}, // Washington DC
	"203": {Lat: 41.3083, Lon: -73.0176}, // Connecticut (Stamford)
	"205": {Lat: 33.5186, Lon: -86.8104}, // Alabama (Birmingham)
	"206": {Lat: 47.6062, Lon: -122.3321}, // Washington (Seattle)
	"207": {Lat: 44.3106, Lon: -69.7795}, // Maine (Augusta)
	"208": {Lat: 43.6150, Lon: -116.2023}, // Idaho (Boise)
	"209": {Lat: 37.6391, Lon: -120.9969}, // California (Stockton)
	"210": {Lat: 29.4241, Lon: -98.4936}, // Texas (San Antonio)
	"212": {Lat: 40.7128, Lon: -74.0060}, // New York (Manhattan)
	"213": {Lat: 34.0522, Lon: -118.2437}, // California (Los Angeles)
	"214": {Lat: 32.7767, Lon: -96.7970}, // Texas (Dallas)
	"215": {Lat: 39.9526, Lon: -75.1652}, // Pennsylvania (Philadelphia)
	"216": {Lat: 41.4993, Lon: -81.6944}, // Ohio (Cleveland)
	"217": {Lat: 39.7817, Lon: -89.6501}, // Illinois (Springfield)
	"218": {Lat: 46.7867, Lon: -92.1005}, // Minnesota (Duluth)
	"219": {Lat: 41.4789, Lon: -87.3828}, // Indiana (Gary)
	"224": {Lat: 42.0883, Lon: -87.9806}, // Illinois (Evanston)
	"225": {Lat: 30.4515, Lon: -91.1871}, // Louisiana (Baton Rouge)
	"228": {Lat: 30.3960, Lon: -89.0928}, // Mississippi (Gulfport)
	"229": {Lat: 31.1580, Lon: -84.1557}, // Georgia (Albany)
	"231": {Lat: 44.2619, Lon: -85.4006}, // Michigan (Traverse City)
	"234": {Lat: 41.0732, Lon: -81.5179}, // Ohio (Akron)
	"239": {Lat: 26.1420, Lon: -81.7948}, // Florida (Fort Myers)
	"240": {Lat: 39.0458, Lon: -76.6413}, // Maryland (Frederick)
	"248": {Lat: 42.5803, Lon: -83.1345}, // Michigan (Pontiac)
	"251": {Lat: 30.6943, Lon: -88.0431}, // Alabama (Mobile)
	"252": {Lat: 35.8582, Lon: -77.0558}, // North Carolina (Rocky Mount)
	"253": {Lat: 47.2529, Lon: -122.4443}, // Washington (Tacoma)
	"254": {Lat: 31.0985, Lon: -97.3428}, // Texas (Killeen)
	"256": {Lat: 34.6059, Lon: -86.9833}, // Alabama (Huntsville)
	"260": {Lat: 41.0793, Lon: -85.1394}, // Indiana (Fort Wayne)
	"262": {Lat: 43.0389, Lon: -88.2619}, // Wisconsin (Kenosha)
	"267": {Lat: 40.0094, Lon: -75.1333}, // Pennsylvania (Philadelphia)
	"269": {Lat: 42.2917, Lon: -85.5872}, // Michigan (Kalamazoo)
	"270": {Lat: 37.0431, Lon: -88.6781}, // Kentucky (Paducah)
	"276": {Lat: 36.7098, Lon: -82.2735}, // Virginia (Bristol)
	"281": {Lat: 29.7604, Lon: -95.3698}, // Texas (Houston)
	"301": {Lat: 39.0458, Lon: -76.6413}, // Maryland (Frederick)
	"302": {Lat: 39.7391, Lon: -75.5398}, // Delaware (Wilmington)
	"303": {Lat: 39.7392, Lon: -104.9903}, // Colorado (Denver)
	"304": {Lat: 39.2833, Lon: -80.6500}, // West Virginia (Bridgeport)
	"305": {Lat: 25.7617, Lon: -80.1918}, // Florida (Miami)
	"307": {Lat: 41.1400, Lon: -104.8197}, // Wyoming (Cheyenne)
	"308": {Lat: 40.9264, Lon: -98.3434}, // Nebraska (Grand Island)
	"309": {Lat: 40.6936, Lon: -89.5890}, // Illinois (Peoria)
	"310": {Lat: 34.0522, Lon: -118.2437}, // California (Los Angeles)
	"312": {Lat: 41.8781, Lon: -87.6298}, // Illinois (Chicago)
	"313": {Lat: 42.3314, Lon: -83.0458}, // Michigan (Detroit)
	"314": {Lat: 38.6270, Lon: -90.1994}, // Missouri (St. Louis)
	"315": {Lat: 43.0481, Lon: -76.1474}, // New York (Syracuse)
	"316": {Lat: 37.6872, Lon: -97.3301}, // Kansas (Wichita)
	"317": {Lat: 39.7684, Lon: -86.1581}, // Indiana (Indianapolis)
	"318": {Lat: 32.5252, Lon: -93.7502}, // Louisiana (Shreveport)
	"319": {Lat: 41.6611, Lon: -91.5302}, // Iowa (Cedar Rapids)
	"320": {Lat: 45.5608, Lon: -94.6859}, // Minnesota (St. Cloud)
	"321": {Lat: 28.5383, Lon: -80.8414}, // Florida (Melbourne)
	"323": {Lat: 34.0522, Lon: -118.2437}, // California (Los Angeles)
	"330": {Lat: 41.0732, Lon: -81.5179}, // Ohio (Akron)
	"331": {Lat: 41.7586, Lon: -88.0855}, // Illinois (Aurora)
	"334": {Lat: 32.3668, Lon: -86.2999}, // Alabama (Montgomery)
	"336": {Lat: 36.0726, Lon: -79.7920}, // North Carolina (Greensboro)
	"337": {Lat: 30.2241, Lon: -92.0198}, // Louisiana (Lafayette)
	"339": {Lat: 42.3584, Lon: -71.0598}, // Massachusetts (Boston)
	"347": {Lat: 40.6782, Lon: -73.9442}, // New York (Brooklyn)
	"351": {Lat: 42.3584, Lon: -71.0598}, // Massachusetts (Boston)
	"352": {Lat: 29.6516, Lon: -82.3248}, // Florida (Gainesville)
	"360": {Lat: 47.3809, Lon: -122.2348}, // Washington (Olympia)
	"361": {Lat: 27.8006, Lon: -97.3964}, // Texas (Corpus Christi)
	"386": {Lat: 29.0380, Lon: -81.0998}, // Florida (Daytona Beach)
	"401": {Lat: 41.8240, Lon: -71.4128}, // Rhode Island (Providence)
	"402": {Lat: 41.2565, Lon: -95.9345}, // Nebraska (Omaha)
	"404": {Lat: 33.7490, Lon: -84.3880}, // Georgia (Atlanta)
	"405": {Lat: 35.4676, Lon: -97.5164}, // Oklahoma (Oklahoma City)
	"406": {Lat: 46.5197, Lon: -110.3626}, // Montana (Great Falls)
	"407": {Lat: 28.5383, Lon: -81.3792}, // Florida (Orlando)
	"408": {Lat: 37.3382, Lon: -121.8863}, // California (San Jose)
	"409": {Lat: 29.7030, Lon: -94.0175}, // Texas (Beaumont)
	"410": {Lat: 39.2904, Lon: -76.6122}, // Maryland (Baltimore)
	"412": {Lat: 40.4406, Lon: -79.9959}, // Pennsylvania (Pittsburgh)
	"413": {Lat: 42.1015, Lon: -72.5898}, // Massachusetts (Springfield)
	"414": {Lat: 43.0389, Lon: -87.9065}, // Wisconsin (Milwaukee)
	"415": {Lat: 37.7749, Lon: -122.4194}, // California (San Francisco)
	"417": {Lat: 37.2090, Lon: -93.2923}, // Missouri (Springfield)
	"419": {Lat: 41.6528, Lon: -83.5379}, // Ohio (Toledo)
	"423": {Lat: 35.0456, Lon: -85.3097}, // Tennessee (Chattanooga)
	"424": {Lat: 34.0522, Lon: -118.2437}, // California (Los Angeles)
	"425": {Lat: 47.6205, Lon: -122.3493}, // Washington (Bellevue)
	"430": {Lat: 32.5007, Lon: -94.7404}, // Texas (Longview)
	"432": {Lat: 31.9973, Lon: -102.0779}, // Texas (Midland)
	"434": {Lat: 37.4316, Lon: -78.6569}, // Virginia (Lynchburg)
	"435": {Lat: 37.6781, Lon: -113.0641}, // Utah (St. George)
	"440": {Lat: 41.4993, Lon: -81.6944}, // Ohio (Cleveland)
	"443": {Lat: 39.2904, Lon: -76.6122}, // Maryland (Baltimore)
	"458": {Lat: 46.8772, Lon: -96.7898}, // Oregon (Eugene)
	"469": {Lat: 32.7767, Lon: -96.7970}, // Texas (Dallas)
	"470": {Lat: 33.7490, Lon: -84.3880}, // Georgia (Atlanta)
	"475": {Lat: 41.3083, Lon: -73.0176}, // Connecticut (Bridgeport)
	"478": {Lat: 32.8407, Lon: -83.6324}, // Georgia (Macon)
	"479": {Lat: 35.3859, Lon: -94.3985}, // Arkansas (Fort Smith)
	"480": {Lat: 33.4484, Lon: -112.0740}, // Arizona (Phoenix)
	"484": {Lat: 40.3428, Lon: -75.9269}, // Pennsylvania (Reading)
	"501": {Lat: 34.7465, Lon: -92.2896}, // Arkansas (Little Rock)
	"502": {Lat: 38.2527, Lon: -85.7585}, // Kentucky (Louisville)
	"503": {Lat: 45.5152, Lon: -122.6784}, // Oregon (Portland)
	"504": {Lat: 29.9511, Lon: -90.0715}, // Louisiana (New Orleans)
	"505": {Lat: 35.0844, Lon: -106.6504}, // New Mexico (Albuquerque)
	"507": {Lat: 44.0582, Lon: -92.4732}, // Minnesota (Rochester)
	"508": {Lat: 42.2596, Lon: -71.8083}, // Massachusetts (Worcester)
	"509": {Lat: 47.6587, Lon: -117.4260}, // Washington (Spokane)
	"510": {Lat: 37.8044, Lon: -122.2712}, // California (Oakland)
	"512": {Lat: 30.2672, Lon: -97.7431}, // Texas (Austin)
	"513": {Lat: 39.1031, Lon: -84.5120}, // Ohio (Cincinnati)
	"515": {Lat: 41.5868, Lon: -93.6250}, // Iowa (Des Moines)
	"516": {Lat: 40.7589, Lon: -73.5843}, // New York (Hempstead)
	"517": {Lat: 42.3314, Lon: -84.5555}, // Michigan (Lansing)
	"518": {Lat: 42.6803, Lon: -73.8370}, // New York (Albany)
	"520": {Lat: 32.2217, Lon: -110.9265}, // Arizona (Tucson)
	"530": {Lat: 39.1638, Lon: -121.6061}, // California (Chico)
	"540": {Lat: 38.4404, Lon: -78.8689}, // Virginia (Harrisonburg)
	"541": {Lat: 44.0521, Lon: -121.3153}, // Oregon (Bend)
	"551": {Lat: 40.7589, Lon: -74.0758}, // New Jersey (Newark)
	"559": {Lat: 36.7378, Lon: -119.7871}, // California (Fresno)
	"561": {Lat: 26.7153, Lon: -80.0534}, // Florida (West Palm Beach)
	"562": {Lat: 33.7701, Lon: -118.1937}, // California (Long Beach)
	"563": {Lat: 41.5868, Lon: -90.5776}, // Iowa (Davenport)
	"564": {Lat: 47.6062, Lon: -122.3321}, // Washington (Seattle)
	"567": {Lat: 41.6528, Lon: -83.5379}, // Ohio (Toledo)
	"570": {Lat: 41.2033, Lon: -75.8816}, // Pennsylvania (Scranton)
	"571": {Lat: 38.9072, Lon: -77.0369}, // Virginia (Arlington)
	"573": {Lat: 38.9517, Lon: -92.3341}, // Missouri (Columbia)
	"574": {Lat: 41.6764, Lon: -86.2520}, // Indiana (South Bend)
	"575": {Lat: 35.0844, Lon: -106.6504}, // New Mexico (Albuquerque)
	"580": {Lat: 34.6037, Lon: -98.4034}, // Oklahoma (Lawton)
	"585": {Lat: 43.1566, Lon: -77.6088}, // New York (Rochester)
	"586": {Lat: 42.6064, Lon: -82.9193}, // Michigan (Warren)
	"601": {Lat: 32.2988, Lon: -90.1848}, // Mississippi (Jackson)
	"602": {Lat: 33.4484, Lon: -112.0740}, // Arizona (Phoenix)
	"603": {Lat: 43.2081, Lon: -71.5376}, // New Hampshire (Manchester)
	"605": {Lat: 44.0805, Lon: -103.2310}, // South Dakota (Rapid City)
	"606": {Lat: 37.1526, Lon: -83.7734}, // Kentucky (Hazard)
	"607": {Lat: 42.4430, Lon: -76.5019}, // New York (Elmira)
	"608": {Lat: 43.0731, Lon: -89.4012}, // Wisconsin (Madison)
	"609": {Lat: 40.0583, Lon: -74.4057}, // New Jersey (Trenton)
	"610": {Lat: 40.3428, Lon: -75.9269}, // Pennsylvania (Reading)
	"612": {Lat: 44.9778, Lon: -93.2650}, // Minnesota (Minneapolis)
	"614": {Lat: 39.9612, Lon: -82.9988}, // Ohio (Columbus)
	"615": {Lat: 36.1627, Lon: -86.7816}, // Tennessee (Nashville)
	"616": {Lat: 42.9634, Lon: -85.6681}, // Michigan (Grand Rapids)
	"617": {Lat: 42.3584, Lon: -71.0598}, // Massachusetts (Boston)
	"618": {Lat: 38.6270, Lon: -89.2023}, // Illinois (Belleville)
	"619": {Lat: 32.7157, Lon: -117.1611}, // California (San Diego)
	"620": {Lat: 37.6872, Lon: -99.1013}, // Kansas (Dodge City)
	"623": {Lat: 33.4484, Lon: -112.0740}, // Arizona (Phoenix)
	"626": {Lat: 34.1064, Lon: -117.5931}, // California (Pasadena)
	"628": {Lat: 37.7749, Lon: -122.4194}, // California (San Francisco)
	"629": {Lat: 36.1627, Lon: -86.7816}, // Tennessee (Nashville)
	"630": {Lat: 41.7586, Lon: -88.0855}, // Illinois (Aurora)
	"631": {Lat: 40.8176, Lon: -73.1365}, // New York (Islip)
	"636": {Lat: 38.7442, Lon: -90.3816}, // Missouri (O'Fallon)
	"641": {Lat: 42.0308, Lon: -93.6091}, // Iowa (Mason City)
	"646": {Lat: 40.7128, Lon: -74.0060}, // New York (Manhattan)
	"650": {Lat: 37.4419, Lon: -122.1430}, // California (Palo Alto)
	"651": {Lat: 44.9537, Lon: -93.0900}, // Minnesota (St. Paul)
	"657": {Lat: 33.8366, Lon: -117.9143}, // California (Anaheim)
	"660": {Lat: 39.7391, Lon: -93.1796}, // Missouri (Sedalia)
	"661": {Lat: 34.5794, Lon: -118.1165}, // California (Lancaster)
	"662": {Lat: 33.4735, Lon: -88.8381}, // Mississippi (Tupelo)
	"667": {Lat: 39.2904, Lon: -76.6122}, // Maryland (Baltimore)
	"669": {Lat: 37.3382, Lon: -121.8863}, // California (San Jose)
	"678": {Lat: 33.7490, Lon: -84.3880}, // Georgia (Atlanta)
	"682": {Lat: 32.7355, Lon: -97.1081}, // Texas (Arlington)
	"701": {Lat: 46.8083, Lon: -100.7837}, // North Dakota (Bismarck)
	"702": {Lat: 36.1699, Lon: -115.1398}, // Nevada (Las Vegas)
	"703": {Lat: 38.9072, Lon: -77.0369}, // Virginia (Arlington)
	"704": {Lat: 35.2271, Lon: -80.8431}, // North Carolina (Charlotte)
	"706": {Lat: 33.9519, Lon: -83.3576}, // Georgia (Athens)
	"707": {Lat: 38.2975, Lon: -122.2869}, // California (Santa Rosa)
	"708": {Lat: 41.7586, Lon: -87.7040}, // Illinois (Cicero)
	"712": {Lat: 42.4969, Lon: -96.4003}, // Iowa (Sioux City)
	"713": {Lat: 29.7604, Lon: -95.3698}, // Texas (Houston)
	"714": {Lat: 33.8366, Lon: -117.9143}, // California (Anaheim)
	"715": {Lat: 44.9537, Lon: -91.4985}, // Wisconsin (Eau Claire)
	"716": {Lat: 42.8864, Lon: -78.8784}, // New York (Buffalo)
	"717": {Lat: 40.2732, Lon: -76.8839}, // Pennsylvania (Harrisburg)
	"718": {Lat: 40.6782, Lon: -73.9442}, // New York (Brooklyn)
	"719": {Lat: 38.8339, Lon: -104.8214}, // Colorado (Colorado Springs)
	"720": {Lat: 39.7392, Lon: -104.9903}, // Colorado (Denver)
	"724": {Lat: 40.4406, Lon: -79.9959}, // Pennsylvania (Pittsburgh)
	"725": {Lat: 36.1699, Lon: -115.1398}, // Nevada (Las Vegas)
	"727": {Lat: 27.7663, Lon: -82.6404}, // Florida (St. Petersburg)
	"731": {Lat: 35.6145, Lon: -88.8140}, // Tennessee (Jackson)
	"732": {Lat: 40.4173, Lon: -74.4097}, // New Jersey (New Brunswick)
	"734": {Lat: 42.2808, Lon: -83.7430}, // Michigan (Ann Arbor)
	"737": {Lat: 30.2672, Lon: -97.7431}, // Texas (Austin)
	"740": {Lat: 39.3292, Lon: -82.1013}, // Ohio (Lancaster)
	"747": {Lat: 34.1684, Lon: -118.6059}, // California (Van Nuys)
	"754": {Lat: 26.1224, Lon: -80.1373}, // Florida (Fort Lauderdale)
	"757": {Lat: 36.8468, Lon: -76.2852}, // Virginia (Norfolk)
	"760": {Lat: 33.2058, Lon: -117.2393}, // California (Vista)
	"762": {Lat: 33.7490, Lon: -84.3880}, // Georgia (Atlanta)
	"763": {Lat: 45.1732, Lon: -93.3993}, // Minnesota (Plymouth)
	"765": {Lat: 40.1934, Lon: -85.3756}, // Indiana (Anderson)
	"770": {Lat: 33.7490, Lon: -84.3880}, // Georgia (Atlanta)
	"772": {Lat: 27.3364, Lon: -80.3932}, // Florida (Port St. Lucie)
	"773": {Lat: 41.8781, Lon: -87.6298}, // Illinois (Chicago)
	"774": {Lat: 42.2596, Lon: -71.8083}, // Massachusetts (Worcester)
	"775": {Lat: 39.1638, Lon: -119.7674}, // Nevada (Reno)
	"781": {Lat: 42.3584, Lon: -71.0598}, // Massachusetts (Boston)
	"785": {Lat: 39.0473, Lon: -95.6890}, // Kansas (Topeka)
	"786": {Lat: 25.7617, Lon: -80.1918}, // Florida (Miami)
	"801": {Lat: 40.7608, Lon: -111.8910}, // Utah (Salt Lake City)
	"802": {Lat: 44.2601, Lon: -72.5806}, // Vermont (Montpelier)
	"803": {Lat: 34.0007, Lon: -81.0348}, // South Carolina (Columbia)
	"804": {Lat: 37.5407, Lon: -77.4360}, // Virginia (Richmond)
	"805": {Lat: 34.4208, Lon: -119.6982}, // California (Ventura)
	"806": {Lat: 33.5779, Lon: -101.8552}, // Texas (Lubbock)
	"808": {Lat: 21.3099, Lon: -157.8581}, // Hawaii (Honolulu)
	"810": {Lat: 42.9634, Lon: -83.7430}, // Michigan (Flint)
	"812": {Lat: 38.9606, Lon: -87.3964}, // Indiana (Evansville)
	"813": {Lat: 27.9506, Lon: -82.4572}, // Florida (Tampa)
	"814": {Lat: 40.4406, Lon: -78.3947}, // Pennsylvania (Altoona)
	"815": {Lat: 42.2711, Lon: -89.0940}, // Illinois (Rockford)
	"816": {Lat: 39.0997, Lon: -94.5786}, // Missouri (Kansas City)
	"817": {Lat: 32.7355, Lon: -97.1081}, // Texas (Arlington)
	"818": {Lat: 34.1684, Lon: -118.6059}, // California (Van Nuys)
	"828": {Lat: 35.5951, Lon: -82.5515}, // North Carolina (Asheville)
	"830": {Lat: 29.7030, Lon: -98.1245}, // Texas (New Braunfels)
	"831": {Lat: 36.7783, Lon: -121.9573}, // California (Salinas)
	"832": {Lat: 29.7604, Lon: -95.3698}, // Texas (Houston)
	"843": {Lat: 32.7765, Lon: -79.9311}, // South Carolina (Charleston)
	"845": {Lat: 41.7370, Lon: -74.1754}, // New York (Middletown)
	"847": {Lat: 42.0883, Lon: -87.9806}, // Illinois (Evanston)
	"848": {Lat: 40.4173, Lon: -74.4097}, // New Jersey (New Brunswick)
	"850": {Lat: 30.4518, Lon: -84.2807}, // Florida (Tallahassee)
	"856": {Lat: 39.8362, Lon: -75.0658}, // New Jersey (Camden)
	"857": {Lat: 42.3584, Lon: -71.0598}, // Massachusetts (Boston)
	"858": {Lat: 32.7157, Lon: -117.1611}, // California (San Diego)
	"859": {Lat: 38.0406, Lon: -84.5037}, // Kentucky (Lexington)
	"860": {Lat: 41.7658, Lon: -72.6734}, // Connecticut (Hartford)
	"862": {Lat: 40.7589, Lon: -74.0758}, // New Jersey (Newark)
	"863": {Lat: 27.4989, Lon: -81.4333}, // Florida (Lakeland)
	"864": {Lat: 34.8526, Lon: -82.3940}, // South Carolina (Anderson)
	"865": {Lat: 35.9606, Lon: -83.9207}, // Tennessee (Knoxville)
	"870": {Lat: 35.8429, Lon: -91.2071}, // Arkansas (Jonesboro)
	"872": {Lat: 41.8781, Lon: -87.6298}, // Illinois (Chicago)
	"878": {Lat: 40.4406, Lon: -79.9959}, // Pennsylvania (Pittsburgh)
	"901": {Lat: 35.1495, Lon: -90.0490}, // Tennessee (Memphis)
	"903": {Lat: 32.3513, Lon: -94.9547}, // Texas (Tyler)
	"904": {Lat: 30.3322, Lon: -81.6557}, // Florida (Jacksonville)
	"906": {Lat: 46.5436, Lon: -87.3954}, // Michigan (Marquette)
	"907": {Lat: 61.2181, Lon: -149.9003}, // Alaska (Anchorage)
	"908": {Lat: 40.6723, Lon: -74.8451}, // New Jersey (Elizabeth)
	"909": {Lat: 34.0775, Lon: -117.6897}, // California (San Bernardino)
	"910": {Lat: 34.2257, Lon: -77.9447}, // North Carolina (Wilmington)
	"912": {Lat: 32.0835, Lon: -81.0998}, // Georgia (Savannah)
	"913": {Lat: 39.0997, Lon: -94.5786}, // Kansas (Kansas City)
	"914": {Lat: 41.0534, Lon: -73.5387}, // New York (White Plains)
	"915": {Lat: 31.7619, Lon: -106.4850}, // Texas (El Paso)
	"916": {Lat: 38.5816, Lon: -121.4944}, // California (Sacramento)
	"917": {Lat: 40.7128, Lon: -74.0060}, // New York (Manhattan)
	"918": {Lat: 36.1540, Lon: -95.9928}, // Oklahoma (Tulsa)
	"919": {Lat: 35.7796, Lon: -78.6382}, // North Carolina (Raleigh)
	"920": {Lat: 44.2619, Lon: -88.4154}, // Wisconsin (Green Bay)
	"925": {Lat: 37.9018, Lon: -122.0312}, // California (Concord)
	"928": {Lat: 34.5394, Lon: -112.4685}, // Arizona (Prescott)
	"929": {Lat: 40.6782, Lon: -73.9442}, // New York (Brooklyn)
	"931": {Lat: 36.1028, Lon: -86.4669}, // Tennessee (Clarksville)
	"934": {Lat: 40.7589, Lon: -73.5843}, // New York (Hempstead)
	"936": {Lat: 30.7266, Lon: -95.5539}, // Texas (Huntsville)
	"937": {Lat: 39.7584, Lon: -84.1916}, // Ohio (Dayton)
	"940": {Lat: 33.2148, Lon: -97.1331}, // Texas (Denton)
	"941": {Lat: 27.3365, Lon: -82.5307}, // Florida (Sarasota)
	"947": {Lat: 42.3314, Lon: -83.0458}, // Michigan (Detroit)
	"949": {Lat: 33.6189, Lon: -117.9298}, // California (Irvine)
	"951": {Lat: 33.7175, Lon: -116.2023}, // California (Riverside)
	"952": {Lat: 44.8801, Lon: -93.4669}, // Minnesota (Bloomington)
	"954": {Lat: 26.1224, Lon: -80.1373}, // Florida (Fort Lauderdale)
	"956": {Lat: 26.2034, Lon: -98.2300}, // Texas (Laredo)
	"959": {Lat: 41.3083, Lon: -73.0176}, // Connecticut (Bridgeport)
	"970": {Lat: 40.5878, Lon: -105.0844}, // Colorado (Fort Collins)
	"971": {Lat: 45.5152, Lon: -122.6784}, // Oregon (Portland)
	"972": {Lat: 32.7767, Lon: -96.7970}, // Texas (Dallas)
	"973": {Lat: 40.7589, Lon: -74.0758}, // New Jersey (Newark)
	"978": {Lat: 42.6431, Lon: -71.3153}, // Massachusetts (Lowell)
	"979": {Lat: 29.1338, Lon: -96.0722}, // Texas (College Station)
	"980": {Lat: 35.2271, Lon: -80.8431}, // North Carolina (Charlotte)
	"984": {Lat: 35.7796, Lon: -78.6382}, // North Carolina (Raleigh)
	"985": {Lat: 29.9537, Lon: -90.0751}, // Louisiana (Hammond)
	"989": {Lat: 43.4654, Lon: -84.5557}, // Michigan (Saginaw)
}
